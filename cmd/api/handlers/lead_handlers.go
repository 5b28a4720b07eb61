package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/services"
)

// CreateLeadHandler godoc
// @Summary      Submit a lead form
// @Tags         leads
// @Accept       json
// @Param        lead  body  dto.LeadRequest  true  "Lead"
// @Produce      json
// @Success      200  {object}  dto.LeadResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /leads [post]
func CreateLeadHandler(svc *services.LeadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lead dto.LeadRequest
		if err := c.ShouldBindJSON(&lead); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "некорректный запрос"})
			return
		}

		resp, err := svc.Accept(lead)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// EstimateHandler godoc
// @Summary      Calculate a renovation estimate
// @Tags         leads
// @Accept       json
// @Param        estimate  body  dto.EstimateRequest  true  "Estimate input"
// @Produce      json
// @Success      200  {object}  dto.EstimateResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /estimate [post]
func EstimateHandler(svc *services.EstimateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.EstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "некорректный запрос"})
			return
		}

		resp, err := svc.Estimate(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
