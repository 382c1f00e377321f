package controllers

import (
	"errors"
	"net/http"

	"tour-admin-backend/services"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InquiryController serves the four inquiry inboxes. Each variant has its own
// status vocabulary, validated by the service layer.
type InquiryController struct {
	inquiries *services.InquiryService
}

func NewInquiryController(inquiries *services.InquiryService) *InquiryController {
	return &InquiryController{inquiries: inquiries}
}

func inquiryUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "inquiry not found")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to update inquiry")
	}
}

// ----------------------------------------------------
// 1. Tour inquiries
// ----------------------------------------------------

func (ic *InquiryController) ListTourInquiries(c *gin.Context) {
	items, err := ic.inquiries.ListTourInquiries(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch inquiries")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

type tourInquiryStatusPayload struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

func (ic *InquiryController) UpdateTourInquiry(c *gin.Context) {
	var payload tourInquiryStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := ic.inquiries.UpdateTourInquiryStatus(c.Param("id"), payload.Status, payload.AdminNotes); err != nil {
		inquiryUpdateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "inquiry updated"})
}

// ----------------------------------------------------
// 2. Day-out inquiries
// ----------------------------------------------------

func (ic *InquiryController) ListDayOutInquiries(c *gin.Context) {
	items, err := ic.inquiries.ListDayOutInquiries(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch inquiries")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (ic *InquiryController) UpdateDayOutInquiry(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := ic.inquiries.UpdateDayOutInquiryStatus(c.Param("id"), payload.Status); err != nil {
		inquiryUpdateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "inquiry updated"})
}

// ----------------------------------------------------
// 3. Contact inquiries
// ----------------------------------------------------

func (ic *InquiryController) ListContactInquiries(c *gin.Context) {
	items, err := ic.inquiries.ListContactInquiries(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch inquiries")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ic *InquiryController) UpdateContactInquiry(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := ic.inquiries.UpdateContactInquiryStatus(c.Param("id"), payload.Status); err != nil {
		inquiryUpdateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "inquiry updated"})
}

// ----------------------------------------------------
// 4. Quick enquiries
// ----------------------------------------------------

func (ic *InquiryController) ListQuickEnquiries(c *gin.Context) {
	items, err := ic.inquiries.ListQuickEnquiries(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch enquiries")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ic *InquiryController) UpdateQuickEnquiry(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := ic.inquiries.UpdateQuickEnquiryStatus(c.Param("id"), payload.Status); err != nil {
		inquiryUpdateError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "enquiry updated"})
}
