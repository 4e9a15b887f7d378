package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles HTTP requests related to contacts.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade, bs portssvc.BalanceSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs, balanceService: bs}
}

// registerContactRoutes registers routes related to contacts.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newContactHandler(contactService, balanceService)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactID", h.getContact)
		contacts.GET("/:contactID/payment-link", h.getPaymentLink)
	}
}

// createContact godoc
// @Summary Add a contact
// @Description Adds a person to split expenses with. Contacts cannot be edited or removed.
// @Tags contacts
// @Accept  json
// @Produce  json
// @Param   contact body dto.CreateContactRequest true "Contact details"
// @Param   X-User-ID header string false "Acting user"
// @Success 201 {object} domain.Contact
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create contact"
// @Router /contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create contact")
		return
	}
	logger.Info("Contact created successfully", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusCreated, contact)
}

// listContacts godoc
// @Summary List contacts
// @Tags contacts
// @Produce  json
// @Success 200 {array} domain.Contact
// @Failure 500 {object} ErrorResponse "Failed to list contacts"
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contacts, err := h.contactService.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list contacts")
		return
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

// getContact godoc
// @Summary Get a contact
// @Tags contacts
// @Produce  json
// @Param   contactID path string true "Contact ID"
// @Success 200 {object} domain.Contact
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve contact"
// @Router /contacts/{contactID} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contact_id", c.Param("contactID")))
	contact, err := h.contactService.GetContactByID(c.Request.Context(), c.Param("contactID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// getPaymentLink godoc
// @Summary Build a settlement link
// @Description Returns a payment app deep link for the amount you currently owe the contact.
// @Tags contacts
// @Produce  json
// @Param   contactID path string true "Contact ID"
// @Param   provider query string false "Payment app" Enums(venmo, paypal, splitpay)
// @Success 200 {object} domain.PaymentRequest
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 409 {object} ErrorResponse "Nothing owed to the contact"
// @Router /contacts/{contactID}/payment-link [get]
func (h *contactHandler) getPaymentLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contact_id", c.Param("contactID")))
	var params dto.PaymentLinkParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	link, err := h.balanceService.GetPaymentLink(c.Request.Context(), c.Param("contactID"), params.Provider)
	if err != nil {
		respondError(c, logger, err, "Failed to build payment link")
		return
	}
	c.JSON(http.StatusOK, link)
}
