// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/utils"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	urlParamEmployeeID = "employee_id"
	urlParamDepartment = "department"
	urlParamSkill      = "skill"
)

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	employee, err := h.services.EmployeeService.CreateEmployee(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, _ := utils.GetCurrentUserFromContext(ctx)
	log.Info().Str("employee_id", employee.EmployeeID).Str("by", user.Username).Msg("employee created")
	utils.WriteJSON(w, models.EmployeeResponse{Message: "Employee created", Employee: employee}, http.StatusCreated)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	h.writeEmployeePage(w, r, models.EmployeeFilter{})
}

func (h *Handler) listEmployeesByDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := urlParam(r, urlParamDepartment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeEmployeePage(w, r, models.EmployeeFilter{Department: department})
}

func (h *Handler) listEmployeesBySkill(w http.ResponseWriter, r *http.Request) {
	skill, err := urlParam(r, urlParamSkill)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeEmployeePage(w, r, models.EmployeeFilter{Skill: skill})
}

func (h *Handler) writeEmployeePage(w http.ResponseWriter, r *http.Request, filter models.EmployeeFilter) {
	pagination, err := paginationFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.EmployeeService.ListEmployees(r.Context(), filter, pagination)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := urlParam(r, urlParamEmployeeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	employeeID, err := urlParam(r, urlParamEmployeeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.EmployeeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	employee, err := h.services.EmployeeService.UpdateEmployee(ctx, employeeID, update)
	if err != nil {
		writeErrorWithNotFound(w, r, err, "Employee not found or no changes")
		return
	}

	user, _ := utils.GetCurrentUserFromContext(ctx)
	log.Info().Str("employee_id", employeeID).Str("by", user.Username).Msg("employee updated")
	utils.WriteJSON(w, models.EmployeeResponse{Message: "Employee updated", Employee: employee}, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	employeeID, err := urlParam(r, urlParamEmployeeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.EmployeeService.DeleteEmployee(ctx, employeeID); err != nil {
		writeError(w, r, err)
		return
	}

	user, _ := utils.GetCurrentUserFromContext(ctx)
	log.Info().Str("employee_id", employeeID).Str("by", user.Username).Msg("employee deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "Employee deleted"}, http.StatusOK)
}

func (h *Handler) averageSalary(w http.ResponseWriter, r *http.Request) {
	department, err := urlParam(r, urlParamDepartment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.EmployeeService.AverageSalary(r.Context(), department)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// urlParam returns the decoded value of a route parameter. chi matches on
// r.URL.RawPath when it is set, leaving parameters escaped; otherwise they
// come from the already decoded r.URL.Path.
func urlParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw, nil
	}

	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidPathParameter, name, err)
	}
	return value, nil
}
