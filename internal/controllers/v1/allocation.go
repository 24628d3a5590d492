package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/dompetku/backend/internal/allocation"
	"github.com/dompetku/backend/internal/httputil"
	"github.com/dompetku/backend/internal/metrics"
	"github.com/dompetku/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsAllocations)
		r.POST("", co.ApplyAllocation)
	}
	{
		r.OPTIONS("/preview", co.OptionsAllocationPreview)
		r.POST("/preview", co.PreviewAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func (co Controller) OptionsAllocations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/preview [options]
func (co Controller) OptionsAllocationPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview allocation
// @Description	Distributes an income over the pockets according to the allocation rules without saving anything.
// @Description	If no rules are submitted, the stored rules are used in the order they were created.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200		{object}	AllocationPreviewResponse
// @Failure		400		{object}	AllocationPreviewResponse
// @Failure		500		{object}	AllocationPreviewResponse
// @Param			request	body		AllocationPreviewRequest	true	"Income and optional rules"
// @Router			/v1/allocations/preview [post]
func (co Controller) PreviewAllocation(c *gin.Context) {
	var request AllocationPreviewRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationPreviewResponse{
			Error: &e,
		})
		return
	}

	var rules []allocation.Rule
	if request.Rules == nil {
		rules, err = models.AllocationRules(co.DB)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AllocationPreviewResponse{
				Error: &e,
			})
			return
		}
	} else {
		rules = make([]allocation.Rule, 0, len(request.Rules))
		for _, r := range request.Rules {
			rule, err := r.rule()
			if err != nil {
				e := err.Error()
				c.JSON(status(err), AllocationPreviewResponse{
					Error: &e,
				})
				return
			}
			rules = append(rules, rule)
		}
	}

	pockets, err := models.PocketIDs(co.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationPreviewResponse{
			Error: &e,
		})
		return
	}

	r, err := allocation.Calculate(request.Amount, rules, pockets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationPreviewResponse{
			Error: &e,
		})
		return
	}

	co.observe(c, metrics.ModePreview, r)

	result := co.newAllocationResult(r)
	c.JSON(http.StatusOK, AllocationPreviewResponse{Data: &result})
}

// @Summary		Apply allocation
// @Description	Books an income into the free-cash pocket and transfers the allocated amounts to the target pockets.
// @Description	All transactions are created together or not at all.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201		{object}	AllocationApplyResponse
// @Failure		400		{object}	AllocationApplyResponse
// @Failure		404		{object}	AllocationApplyResponse
// @Failure		500		{object}	AllocationApplyResponse
// @Param			request	body		AllocationApplyRequest	true	"Income"
// @Router			/v1/allocations [post]
func (co Controller) ApplyAllocation(c *gin.Context) {
	var request AllocationApplyRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationApplyResponse{
			Error: &e,
		})
		return
	}

	if !request.Amount.IsPositive() {
		e := errAllocationAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, AllocationApplyResponse{
			Error: &e,
		})
		return
	}

	date := request.Date
	if date.IsZero() {
		date = time.Now()
	}

	var (
		r         allocation.Result
		pocket    models.Pocket
		income    models.Transaction
		transfers []models.Transaction
	)

	err = co.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		pocket, err = freeCashPocket(tx, request.PocketID)
		if err != nil {
			return err
		}

		rules, err := models.AllocationRules(tx)
		if err != nil {
			return err
		}

		pockets, err := models.PocketIDs(tx)
		if err != nil {
			return err
		}

		r, err = allocation.Calculate(request.Amount, rules, pockets)
		if err != nil {
			return err
		}

		income = models.Transaction{
			DestinationPocketID: &pocket.ID,
			CategoryID:          request.CategoryID,
			Date:                date,
			Amount:              request.Amount,
			Note:                request.Note,
		}

		err = tx.Create(&income).Error
		if err != nil {
			return err
		}

		for _, e := range r.Allocations {
			// The free-cash pocket keeps its share without a transfer
			if !e.Amount.IsPositive() || e.PocketID == pocket.ID {
				continue
			}

			transfer := models.Transaction{
				SourcePocketID:      &pocket.ID,
				DestinationPocketID: &e.PocketID,
				Date:                date,
				Amount:              e.Amount,
				Note:                request.Note,
			}

			err = tx.Create(&transfer).Error
			if err != nil {
				return err
			}

			transfers = append(transfers, transfer)
		}

		return nil
	})
	err = models.TranslateError(err)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationApplyResponse{
			Error: &e,
		})
		return
	}

	co.observe(c, metrics.ModeApply, r)

	apply := co.newAllocationApply(c, r, pocket, income, transfers)
	c.JSON(http.StatusCreated, AllocationApplyResponse{Data: &apply})
}

// freeCashPocket returns the pocket with the given ID or, if id is nil,
// the oldest main pocket that is not archived.
func freeCashPocket(tx *gorm.DB, id *uuid.UUID) (models.Pocket, error) {
	var pocket models.Pocket

	if id != nil && *id != uuid.Nil {
		err := tx.First(&pocket, *id).Error
		return pocket, err
	}

	err := tx.
		Where(&models.Pocket{Type: models.PocketTypeMain}).
		Where("pockets.archived = ?", false).
		Order("pockets.created_at ASC").
		First(&pocket).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return pocket, errNoFreeCashPocket
	}

	return pocket, err
}

// observe records and logs a calculator run.
func (co Controller) observe(c *gin.Context, mode metrics.Mode, r allocation.Result) {
	if co.Metrics != nil {
		co.Metrics.ObserveAllocation(mode, r)
	}

	log.Debug().
		Str("request-id", requestid.Get(c)).
		Str("mode", string(mode)).
		Str("income", r.Income.String()).
		Int("allocations", len(r.Allocations)).
		Int("skipped", len(r.Skipped)).
		Str("remaining", r.Remaining.String()).
		Msg("allocation calculated")
}
