package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chenhelen9/devops-capstone-project/internal/middleware"
	"github.com/chenhelen9/devops-capstone-project/internal/models"
	"github.com/chenhelen9/devops-capstone-project/internal/repository"
)

// AccountOperator defines the account operations used by AccountHandler.
type AccountOperator interface {
	Create(ctx context.Context, account *models.Account) error
	Get(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accounts AccountOperator
}

// AccountRequest is the inbound wire representation of an account. The same
// shape is accepted for create and update.
type AccountRequest struct {
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required"`
	Address     string      `json:"address"`
	PhoneNumber string      `json:"phone_number"`
	DateJoined  models.Date `json:"date_joined"`
}

func NewAccountHandler(accounts AccountOperator) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// CreateAccount handles POST /accounts. The declared media type must be
// exactly application/json; anything else is rejected before the body is read.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	if contentType := c.GetHeader("Content-Type"); contentType != "application/json" {
		log.Printf("Invalid Content-Type: %s", contentType)
		middleware.RespondWithError(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account := &models.Account{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateJoined:  req.DateJoined,
	}
	if err := h.accounts.Create(c.Request.Context(), account); err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.Header("Location", locationURL(c, account.ID))
	c.JSON(http.StatusCreated, account)
}

// ListAccounts handles GET /accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	c.JSON(http.StatusOK, accounts)
}

// GetAccount handles GET /accounts/:accountId.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	account, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles PUT /accounts/:accountId. The posted attributes
// overwrite the persisted record's values.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	account, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Address = req.Address
	account.PhoneNumber = req.PhoneNumber
	if !req.DateJoined.IsZero() {
		account.DateJoined = req.DateJoined
	}

	if err := h.accounts.Update(c.Request.Context(), account); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount handles DELETE /accounts/:accountId.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	if err := h.accounts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, id)
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}

// accountID parses the :accountId path parameter. A non-integer id can never
// match a persisted record, so it is reported as not found.
func accountID(c *gin.Context) (int64, bool) {
	param := c.Param("accountId")
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("Account with id [%s] could not be found.", param))
		return 0, false
	}
	return id, true
}

func respondNotFound(c *gin.Context, id int64) {
	middleware.RespondWithError(c, http.StatusNotFound,
		fmt.Sprintf("Account with id [%d] could not be found.", id))
}

// locationURL builds the absolute URL of a created account for the Location
// header.
func locationURL(c *gin.Context, id int64) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/accounts/%d", scheme, c.Request.Host, id)
}
