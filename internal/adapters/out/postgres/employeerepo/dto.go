// Package employeerepo persists employees and their coverage areas with GORM.
package employeerepo

import (
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type EmployeeDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name          string            `gorm:"type:varchar(255);not null"`
	Status        string            `gorm:"type:varchar(20);not null;index"`
	CoverageAreas []CoverageAreaDTO `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

// CoverageAreaDTO keeps deactivated areas as rows with active = false.
type CoverageAreaDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Zip               string    `gorm:"type:char(5);not null"`
	TravelRadiusMiles float64   `gorm:"not null"`
	Active            bool      `gorm:"not null;index"`
}

func (CoverageAreaDTO) TableName() string {
	return "coverage_areas"
}

func fromDomain(e *employee.Employee) EmployeeDTO {
	employeeID := e.ID().Bytes()
	areas := make([]CoverageAreaDTO, 0, len(e.Areas()))
	for _, a := range e.Areas() {
		areas = append(areas, CoverageAreaDTO{
			ID:                a.ID().Bytes(),
			EmployeeID:        employeeID,
			Zip:               a.Zip().String(),
			TravelRadiusMiles: float64(a.TravelRadius()),
			Active:            a.IsActive(),
		})
	}

	return EmployeeDTO{
		ID:            employeeID,
		Name:          e.Name(),
		Status:        string(e.Status()),
		CoverageAreas: areas,
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := employee.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	areas := make([]*employee.CoverageArea, 0, len(dto.CoverageAreas))
	for _, areaDTO := range dto.CoverageAreas {
		area, areaErr := areaToDomain(areaDTO)
		if areaErr != nil {
			return nil, areaErr
		}
		areas = append(areas, area)
	}

	return employee.RestoreEmployee(id, dto.Name, status, areas)
}

func areaToDomain(dto CoverageAreaDTO) (*employee.CoverageArea, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	zip, err := kernel.NewZipCode(dto.Zip)
	if err != nil {
		return nil, err
	}

	return employee.RestoreCoverageArea(id, employeeID, zip, kernel.Miles(dto.TravelRadiusMiles), dto.Active)
}
