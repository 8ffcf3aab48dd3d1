// file: internals/features/records/trainer_certifications/controller/trainer_certification_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "azubiplan_backend/internals/features/records/trainer_certifications/dto"
	model "azubiplan_backend/internals/features/records/trainer_certifications/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

type TrainerCertificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTrainerCertificationController(db *gorm.DB, v *validator.Validate) *TrainerCertificationController {
	if v == nil {
		v = validator.New()
	}
	return &TrainerCertificationController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

/* ============================================
   CREATE (admin only)
   POST /a/trainer-certifications
============================================ */

func (ctl *TrainerCertificationController) Create(c *fiber.Ctx) error {
	var p dto.TrainerCertificationCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	ent := p.ToModel(companyID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to create trainer certification")
	}
	return helper.JsonCreated(c, "trainer certification created", dto.FromTrainerCertificationModel(ent))
}

/* ============================================
   LIST by trainer
   GET /trainers/:id/certifications
============================================ */

func (ctl *TrainerCertificationController) ListByTrainer(c *fiber.Ctx) error {
	trainerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	var list []model.TrainerCertificationModel
	if err := ctl.DB.
		Where("trainer_certification_company_id = ? AND trainer_certification_trainer_id = ?", companyID, trainerID).
		Order("trainer_certification_issued_at DESC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list trainer certifications")
	}
	return helper.JsonOK(c, "trainer certifications", dto.FromTrainerCertificationModels(list))
}

/* ============================================
   DELETE (soft) — admin only
   DELETE /a/trainer-certifications/:id
============================================ */

func (ctl *TrainerCertificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	var ent model.TrainerCertificationModel
	if err := ctl.DB.
		Where("trainer_certification_company_id = ? AND trainer_certification_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "trainer certification not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load trainer certification")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete trainer certification")
	}
	return helper.JsonDeleted(c, "trainer certification deleted", fiber.Map{"trainer_certification_id": ent.TrainerCertificationID})
}
