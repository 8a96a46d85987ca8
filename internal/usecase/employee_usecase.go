package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"
	"go-hrms-backend/pkg/upload"

	"github.com/xuri/excelize/v2"
)

type employeeUsecase struct {
	personRepo domain.PersonRepository
	letterRepo domain.LetterRepository
	emailRepo  domain.EmailHistoryRepository
	store      domain.FileStore
}

func NewEmployeeUsecase(personRepo domain.PersonRepository, letterRepo domain.LetterRepository, emailRepo domain.EmailHistoryRepository, store domain.FileStore) domain.EmployeeUsecase {
	return &employeeUsecase{
		personRepo: personRepo,
		letterRepo: letterRepo,
		emailRepo:  emailRepo,
		store:      store,
	}
}

func (u *employeeUsecase) List(ctx context.Context) ([]domain.Person, error) {
	persons, err := u.personRepo.List(ctx, domain.PersonFilter{Role: domain.RoleEmployee})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return persons, nil
}

// GetByID returns the employee with their letters populated
func (u *employeeUsecase) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	person, err := u.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	letters, err := u.letterRepo.ListByRecipient(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	person.Letters = letters
	return person, nil
}

// Update edits profile fields only. Letters and activities are never touched
// through this path.
func (u *employeeUsecase) Update(ctx context.Context, id string, upd domain.EmployeeUpdate) (*domain.Person, error) {
	person, err := u.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FullName != "" {
		person.FullName = upd.FullName
	}
	if upd.Email != "" {
		person.Email = upd.Email
	}
	if upd.Phone != "" {
		person.Phone = upd.Phone
	}
	if upd.Address != "" {
		person.Address = upd.Address
	}
	if upd.Education != "" {
		person.Education = upd.Education
	}
	if upd.Experience != "" {
		person.Experience = upd.Experience
	}
	if upd.LinkedIn != "" {
		person.LinkedIn = upd.LinkedIn
	}
	if upd.Status != "" {
		if upd.Status != domain.StatusActive && upd.Status != domain.StatusInactive {
			return nil, apperror.BadRequest("Status must be active or inactive")
		}
		person.Status = upd.Status
	}
	if upd.Department != "" {
		person.EmployeeData.Department = upd.Department
	}

	if len(upd.ProfileImageData) > 0 {
		if err := upload.ValidateImage(upd.ProfileImageName, upd.ProfileImageData); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		url, err := u.store.Upload(ctx, "profile-images", upd.ProfileImageName, upload.ContentType(upd.ProfileImageName), upd.ProfileImageData)
		if err != nil {
			return nil, apperror.Upstream("Failed to upload profile image", err)
		}
		person.ProfileImage = url
	}

	if err := u.personRepo.Update(ctx, person); err != nil {
		return nil, apperror.Internal(err)
	}
	return person, nil
}

func (u *employeeUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.getEmployee(ctx, id); err != nil {
		return err
	}
	if err := u.personRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// AddActivity appends a performance activity and synchronously recomputes the
// running score. Returns the new activity and the updated score string.
func (u *employeeUsecase) AddActivity(ctx context.Context, id string, actType, description string, performance int) (*domain.Activity, string, error) {
	if performance < 1 || performance > 5 {
		return nil, "", apperror.BadRequest("Performance must be between 1 and 5")
	}
	if actType == "" || description == "" {
		return nil, "", apperror.BadRequest("Activity type and description are required")
	}

	person, err := u.getEmployee(ctx, id)
	if err != nil {
		return nil, "", err
	}

	act := domain.Activity{
		ID:          time.Now().UnixMilli(),
		Date:        time.Now(),
		Type:        actType,
		Description: description,
		Performance: performance,
	}
	score := person.AppendActivity(act)

	if err := u.personRepo.Update(ctx, person); err != nil {
		return nil, "", apperror.Internal(err)
	}
	return &act, score, nil
}

// ExportRoster builds an xlsx roster of all employees. Returns the file bytes
// and a timestamped filename.
func (u *employeeUsecase) ExportRoster(ctx context.Context) ([]byte, string, error) {
	persons, err := u.personRepo.List(ctx, domain.PersonFilter{Role: domain.RoleEmployee})
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Full Name", "Email", "Phone", "Department", "Status", "Hire Date", "Performance Score"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range persons {
		department, hireDate, score := "", "", ""
		if p.EmployeeData != nil {
			department = p.EmployeeData.Department
			hireDate = p.EmployeeData.HireDate.Format("2006-01-02")
			score = p.EmployeeData.PerformanceScore
		}
		values := []any{p.FullName, p.Email, p.Phone, department, p.Status, hireDate, score}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().Format("20060102-150405"))
	return buf.Bytes(), filename, nil
}

// EmailHistory returns the emails exchanged with the employee, newest first.
// Messages sent while they were still a candidate are part of the trail.
func (u *employeeUsecase) EmailHistory(ctx context.Context, id string) ([]domain.EmailEntry, error) {
	if _, err := u.getEmployee(ctx, id); err != nil {
		return nil, err
	}
	entries, err := u.emailRepo.ListByPerson(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return entries, nil
}

func (u *employeeUsecase) getEmployee(ctx context.Context, id string) (*domain.Person, error) {
	person, err := u.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.Internal(err)
	}
	if _, err := person.AsEmployee(); err != nil {
		return nil, apperror.NotFound("Employee not found")
	}
	return person, nil
}
