// file: internals/features/academics/results/controller/result_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/academics/results/dto"
	resultModel "uniportal_backend/internals/features/academics/results/model"
	resultService "uniportal_backend/internals/features/academics/results/service"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	helper "uniportal_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

/* ====================== TERM RESULTS ====================== */

// TermResults returns the published results for one term with the term GPA.
// ?academic_year= and ?semester= default to the student's current term.
func (ctrl *ResultController) TermResults(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	year := strings.TrimSpace(c.Query("academic_year"))
	if year == "" {
		year = st.StudentAcademicYear
	}
	sem := strings.TrimSpace(c.Query("semester"))
	if sem == "" {
		sem = st.StudentSemester
	}

	var rows []resultModel.Result
	if err := ctrl.DB.Preload("Course").
		Where("result_student_id = ? AND result_academic_year = ? AND result_semester = ?", studentID, year, sem).
		Order("result_published_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] result query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load results")
	}

	gpa, units := resultService.WeightedGPA(rows)
	resp := dto.TermResultsResponse{
		AcademicYear: year,
		Semester:     sem,
		Results:      make([]dto.ResultResponse, 0, len(rows)),
		GPA:          gpa,
		TotalUnits:   units,
	}
	for i := range rows {
		resp.Results = append(resp.Results, dto.ToResultResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

/* ====================== TRANSCRIPT ====================== */

// Transcript returns every published term in order plus the cumulative GPA.
func (ctrl *ResultController) Transcript(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var rows []resultModel.Result
	if err := ctrl.DB.Preload("Course").
		Where("result_student_id = ?", studentID).
		Order("result_academic_year ASC, result_semester ASC, result_published_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] transcript query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load transcript")
	}

	order, buckets := resultService.GroupByTerm(rows)
	resp := dto.TranscriptResponse{
		StudentID: studentID.String(),
		Terms:     make([]dto.TermResultsResponse, 0, len(order)),
	}
	for _, key := range order {
		termRows := buckets[key]
		gpa, units := resultService.WeightedGPA(termRows)
		term := dto.TermResultsResponse{
			AcademicYear: key.AcademicYear,
			Semester:     key.Semester,
			Results:      make([]dto.ResultResponse, 0, len(termRows)),
			GPA:          gpa,
			TotalUnits:   units,
		}
		for i := range termRows {
			term.Results = append(term.Results, dto.ToResultResponse(&termRows[i]))
		}
		resp.Terms = append(resp.Terms, term)
	}
	cgpa, _ := resultService.WeightedGPA(rows)
	resp.CGPA = cgpa

	return helper.JsonOK(c, "OK", resp)
}
