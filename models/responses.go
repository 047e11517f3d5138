// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// EmployeeResponse acknowledges a write and carries the stored record.
type EmployeeResponse struct {
	Message  string   `json:"message"`
	Employee Employee `json:"employee"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
