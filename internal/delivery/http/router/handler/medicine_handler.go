package handler

import (
	"log/slog"
	"net/http"
	"time"

	"careconnect/internal/delivery/http/response"
	"careconnect/internal/domain/entity"
	"careconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MedicineHandlerParams holds dependencies for MedicineHandler, injected by Fx.
type MedicineHandlerParams struct {
	fx.In

	MedicineUC usecase.MedicineUsecase
	UserUC     usecase.UserUsecase
	Logger     *slog.Logger
}

// MedicineHandler serves medicine schedules and dose confirmations.
type MedicineHandler struct {
	medicineUC usecase.MedicineUsecase
	userUC     usecase.UserUsecase
	logger     *slog.Logger
}

// NewMedicineHandler is the constructor for MedicineHandler
func NewMedicineHandler(params MedicineHandlerParams) *MedicineHandler {
	return &MedicineHandler{
		medicineUC: params.MedicineUC,
		userUC:     params.UserUC,
		logger:     params.Logger,
	}
}

// MarkTakenBody is the body of POST /medicines/:id/taken
type MarkTakenBody struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// Create adds a medicine for the caller, or for a connected patient when the caller is a caretaker
func (h *MedicineHandler) Create(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req usecase.MedicineInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	medicine, err := h.medicineUC.Create(c.Request().Context(), userID, &req, entity.MedicineSourceManual)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, medicine)
}

// List returns the medicines the caller may see. ?patient_id= narrows it to one patient.
func (h *MedicineHandler) List(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	ctx := c.Request().Context()
	var medicines []*entity.Medicine
	if patientID := c.QueryParam("patient_id"); patientID != "" {
		medicines, err = h.medicineUC.ListForPatient(ctx, userID, patientID)
	} else {
		var user *entity.User
		user, err = h.userUC.GetProfile(ctx, userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if user.IsPatient() {
			medicines, err = h.medicineUC.ListForPatient(ctx, userID, userID)
		} else {
			medicines, err = h.medicineUC.ListForCaretaker(ctx, userID)
		}
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, medicines)
}

// Update replaces a medicine's fields
func (h *MedicineHandler) Update(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req usecase.MedicineInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	medicine, err := h.medicineUC.Update(c.Request().Context(), userID, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, medicine)
}

// Deactivate stops reminders for a medicine without deleting it
func (h *MedicineHandler) Deactivate(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	if err := h.medicineUC.Deactivate(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Medicine deactivated"))
}

// Delete removes a medicine
func (h *MedicineHandler) Delete(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	if err := h.medicineUC.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Medicine deleted"))
}

// MarkTaken records a dose as taken by the calling patient
func (h *MedicineHandler) MarkTaken(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req MarkTakenBody
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.medicineUC.MarkTaken(c.Request().Context(), userID, c.Param("id"), req.Date, req.Time); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Dose recorded"))
}

// Today returns the calling patient's schedule for the current day
func (h *MedicineHandler) Today(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	schedule, err := h.medicineUC.TodaySchedule(c.Request().Context(), userID, time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// Plan returns the calling caretaker's day plan across patients
func (h *MedicineHandler) Plan(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	plan, err := h.medicineUC.DayPlan(c.Request().Context(), userID, time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}
