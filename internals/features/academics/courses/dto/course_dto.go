// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"time"

	courseModel "uniportal_backend/internals/features/academics/courses/model"
)

type RegisterCourseRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid4"`
}

type CourseResponse struct {
	CourseID     string `json:"course_id"`
	Code         string `json:"code"`
	Title        string `json:"title"`
	ProgramCode  string `json:"program_code"`
	YearOfStudy  int    `json:"year_of_study"`
	Semester     string `json:"semester"`
	CreditUnits  int    `json:"credit_units"`
	LecturerName string `json:"lecturer_name"`
}

type RegistrationResponse struct {
	RegistrationID string          `json:"registration_id"`
	AcademicYear   string          `json:"academic_year"`
	Semester       string          `json:"semester"`
	RegisteredAt   time.Time       `json:"registered_at"`
	Course         *CourseResponse `json:"course,omitempty"`
}

func ToCourseResponse(m *courseModel.Course) CourseResponse {
	return CourseResponse{
		CourseID:     m.CourseID.String(),
		Code:         m.CourseCode,
		Title:        m.CourseTitle,
		ProgramCode:  m.CourseProgramCode,
		YearOfStudy:  m.CourseYearOfStudy,
		Semester:     m.CourseSemester,
		CreditUnits:  m.CourseCreditUnits,
		LecturerName: m.CourseLecturerName,
	}
}

func ToRegistrationResponse(m *courseModel.CourseRegistration) RegistrationResponse {
	resp := RegistrationResponse{
		RegistrationID: m.CourseRegistrationID.String(),
		AcademicYear:   m.CourseRegistrationAcademicYear,
		Semester:       m.CourseRegistrationSemester,
		RegisteredAt:   m.CourseRegistrationCreatedAt,
	}
	if m.Course != nil {
		course := ToCourseResponse(m.Course)
		resp.Course = &course
	}
	return resp
}
