// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	studentModel "uniportal_backend/internals/features/academics/students/model"
)

type StudentResponse struct {
	StudentID    string  `json:"student_id"`
	RegNumber    string  `json:"reg_number"`
	FullName     string  `json:"full_name"`
	ProgramCode  string  `json:"program_code"`
	YearOfStudy  int     `json:"year_of_study"`
	Semester     string  `json:"semester"`
	AcademicYear string  `json:"academic_year"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}

func ToStudentResponse(m *studentModel.Student) StudentResponse {
	return StudentResponse{
		StudentID:    m.StudentID.String(),
		RegNumber:    m.StudentRegNumber,
		FullName:     m.StudentFullName,
		ProgramCode:  m.StudentProgramCode,
		YearOfStudy:  m.StudentYearOfStudy,
		Semester:     m.StudentSemester,
		AcademicYear: m.StudentAcademicYear,
		AvatarURL:    m.StudentAvatarURL,
	}
}
