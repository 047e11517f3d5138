package store

import "github.com/MKhiriev/go-employee-keeper/internal/logger"

// Storages groups every repository used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	EmployeeRepository EmployeeRepository
}

// NewStorages builds all repositories over one shared connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		EmployeeRepository: NewEmployeeRepository(db, log),
	}
}
