// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

const (
	// DefaultPage is the page returned when none is requested.
	DefaultPage = 1
	// DefaultPageSize is the page size used when none (or a non-positive
	// one) is requested.
	DefaultPageSize = 10
	// MaxPageSize is the largest page size accepted by the HTTP API.
	// The repository itself imposes no ceiling.
	MaxPageSize = 100
)

// Pagination selects one page of a listing.
type Pagination struct {
	Page     int64 `json:"page"`
	PageSize int64 `json:"page_size"`
}

// Normalize clamps p to valid values: pages below 1 become 1 and
// non-positive page sizes fall back to [DefaultPageSize].
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset returns the number of records preceding the page. It saturates
// at math.MaxInt64, the largest OFFSET PostgreSQL accepts.
func (p Pagination) Offset() uint64 {
	p = p.Normalize()
	if p.Page-1 > math.MaxInt64/p.PageSize {
		return math.MaxInt64
	}
	return uint64((p.Page - 1) * p.PageSize)
}

// EmployeeFilter narrows a listing. Empty fields do not filter.
type EmployeeFilter struct {
	// Department matches the department exactly.
	Department string
	// Skill matches records whose skills contain this exact element.
	Skill string
}

// EmployeePage is one page of an employee listing. Total counts every
// matching record, ignoring pagination.
type EmployeePage struct {
	Page     int64      `json:"page"`
	PageSize int64      `json:"page_size"`
	Total    int64      `json:"total"`
	Items    []Employee `json:"items"`
}

// DepartmentSalary is the result of the average salary aggregation.
type DepartmentSalary struct {
	Department    string  `json:"department"`
	AverageSalary float64 `json:"averageSalary"`
	Count         int64   `json:"count"`
}
