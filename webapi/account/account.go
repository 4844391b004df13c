// Package account exposes the HTTP surface for account lifecycle
// operations.
package account

import (
	"fmt"

	accountsvc "github.com/amirasaad/accounts/pkg/service/account"
	"github.com/amirasaad/accounts/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for account operations using the Fiber web
// framework.
//
// Routes:
//   - POST   /accounts      : Create a new account.
//   - GET    /accounts      : List all accounts.
//   - GET    /accounts/:id  : Read a single account.
//   - PUT    /accounts/:id  : Replace an account wholesale.
//   - DELETE /accounts/:id  : Delete an account (idempotent).
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/accounts", CreateAccount(svc))
	app.Get("/accounts", ListAccounts(svc))
	app.Get("/accounts/:id", GetAccount(svc))
	app.Put("/accounts/:id", UpdateAccount(svc))
	app.Delete("/accounts/:id", DeleteAccount(svc))
}

// CreateAccount returns a Fiber handler that creates a new account from the
// JSON request body. The request must carry Content-Type application/json.
// @Summary Create a new account
// @Description Creates an account from the posted JSON body. Returns the created record with its assigned id.
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} AccountResponse "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request body"
// @Failure 415 {object} common.ProblemDetails "Unsupported media type"
// @Router /accounts [post]
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info("Request to create an Account")
		if !c.Is("json") {
			log.Errorf("Invalid Content-Type: %s", c.Get(fiber.HeaderContentType))
			return common.ErrorResponseJSON(
				c,
				fiber.StatusUnsupportedMediaType,
				"Unsupported Media Type",
				"Content-Type must be application/json",
			)
		}
		input, err := common.BindAndValidate[AccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		created, err := svc.Create(c.UserContext(), input.ToCreateDTO())
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ErrorResponseJSON(
				c,
				common.ErrorToStatusCode(err),
				"Failed to create account",
				err.Error(),
			)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/accounts/%d", created.ID))
		return c.Status(fiber.StatusCreated).JSON(ToAccountResponse(created))
	}
}

// ListAccounts returns a Fiber handler that lists every stored account as a
// bare JSON array, empty when the store is empty.
// @Summary List all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} AccountResponse
// @Router /accounts [get]
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info("Returning all records")
		accounts, err := svc.List(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ErrorResponseJSON(
				c,
				common.ErrorToStatusCode(err),
				"Failed to list accounts",
				err.Error(),
			)
		}
		resp := make([]*AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			resp = append(resp, ToAccountResponse(a))
		}
		log.Infof("Total number of records returned: [%d]", len(resp))
		return c.JSON(resp)
	}
}

// GetAccount returns a Fiber handler that reads a single account by id.
// @Summary Read an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{id} [get]
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Infof("Account info request: id:[%s]", c.Params("id"))
		id, err := c.ParamsInt("id")
		if err != nil {
			return notFound(c)
		}
		a, err := svc.Get(c.UserContext(), int64(id))
		if err != nil {
			if common.ErrorToStatusCode(err) == fiber.StatusNotFound {
				return notFound(c)
			}
			log.Errorf("Failed to read account: %v", err)
			return common.ErrorResponseJSON(
				c,
				common.ErrorToStatusCode(err),
				"Failed to read account",
				err.Error(),
			)
		}
		return c.JSON(ToAccountResponse(a))
	}
}

// UpdateAccount returns a Fiber handler that replaces an account wholesale.
// The record must exist and the body must pass the same validation as
// create. Content-Type is deliberately not enforced here; only the create
// route rejects non-JSON media types.
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AccountRequest true "Full account record"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ProblemDetails "Invalid request body"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{id} [put]
func UpdateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Infof("Request to update Account id:[%s]", c.Params("id"))
		id, err := c.ParamsInt("id")
		if err != nil {
			return notFound(c)
		}
		// Existence is checked before the body so an unknown id answers 404
		// even when the payload is invalid.
		if _, err := svc.Get(c.UserContext(), int64(id)); err != nil {
			if common.ErrorToStatusCode(err) == fiber.StatusNotFound {
				return notFound(c)
			}
			log.Errorf("Failed to update account: %v", err)
			return common.ErrorResponseJSON(
				c,
				common.ErrorToStatusCode(err),
				"Failed to update account",
				err.Error(),
			)
		}
		input, err := common.BindAndValidate[AccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		updated, err := svc.Update(c.UserContext(), int64(id), input.ToUpdateDTO())
		if err != nil {
			log.Errorf("Failed to update account: %v", err)
			return common.ErrorResponseJSON(
				c,
				common.ErrorToStatusCode(err),
				"Failed to update account",
				err.Error(),
			)
		}
		return c.JSON(ToAccountResponse(updated))
	}
}

// DeleteAccount returns a Fiber handler that deletes an account by id.
// Deletion is idempotent: an unknown or malformed id still answers 204.
// @Summary Delete an account
// @Tags accounts
// @Param id path int true "Account ID"
// @Success 204 "No content"
// @Router /accounts/{id} [delete]
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Infof("Request to delete Account id:[%s]", c.Params("id"))
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		if err := svc.Delete(c.UserContext(), int64(id)); err != nil {
			log.Errorf("Failed to delete account: %v", err)
			return common.ErrorResponseJSON(
				c,
				fiber.StatusInternalServerError,
				"Failed to delete account",
				err.Error(),
			)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func notFound(c *fiber.Ctx) error {
	return common.ErrorResponseJSON(
		c,
		fiber.StatusNotFound,
		"Account not found",
		notFoundDetail(c),
	)
}

func notFoundDetail(c *fiber.Ctx) string {
	return fmt.Sprintf("no account found with id: [%s]", c.Params("id"))
}
