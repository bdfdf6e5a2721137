// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/academics/courses/dto"
	courseModel "uniportal_backend/internals/features/academics/courses/model"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	helper "uniportal_backend/internals/helpers"
)

var validate = validator.New()

// pq error 23505: unique_violation
const pqUniqueViolation = "23505"

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

/* ====================== CATALOGUE ====================== */

// ListCatalog returns the units offered for the student's program at the
// student's current year and semester.
func (ctrl *CourseController) ListCatalog(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	p := helper.ParseFiber(c, "code", "asc", helper.DefaultOpts)
	allowed := map[string]string{
		"code":  "course_code",
		"title": "course_title",
		"units": "course_credit_units",
	}
	orderClause, err := p.SafeOrderClause(allowed, "code")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort key")
	}
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	base := ctrl.DB.Model(&courseModel.Course{}).
		Where("course_program_code = ? AND course_year_of_study = ? AND course_semester = ?",
			st.StudentProgramCode, st.StudentYearOfStudy, st.StudentSemester).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] course catalogue count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course catalogue")
	}

	var rows []courseModel.Course
	if err := base.Order(orderExpr).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] course catalogue query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course catalogue")
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToCourseResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildMeta(total, p))
}

/* ====================== REGISTRATIONS ====================== */

// ListRegistered returns the units the student carries this term.
func (ctrl *CourseController) ListRegistered(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	var regs []courseModel.CourseRegistration
	if err := ctrl.DB.Preload("Course").
		Where("course_registration_student_id = ? AND course_registration_academic_year = ? AND course_registration_semester = ?",
			studentID, st.StudentAcademicYear, st.StudentSemester).
		Order("course_registration_created_at ASC").
		Find(&regs).Error; err != nil {
		log.Printf("[ERROR] registration query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registered units")
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		out = append(out, dto.ToRegistrationResponse(&regs[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// Register enrols the student on a unit for their current term.
func (ctrl *CourseController) Register(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var req dto.RegisterCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	var course courseModel.Course
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[ERROR] course lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register unit")
	}
	if course.CourseProgramCode != st.StudentProgramCode {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unit is not offered on your program")
	}

	reg := courseModel.CourseRegistration{
		CourseRegistrationStudentID:    studentID,
		CourseRegistrationCourseID:     courseID,
		CourseRegistrationAcademicYear: st.StudentAcademicYear,
		CourseRegistrationSemester:     st.StudentSemester,
	}
	if err := ctrl.DB.Create(&reg).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return helper.JsonError(c, fiber.StatusConflict, "Unit already registered for this term")
		}
		log.Printf("[ERROR] registration insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register unit")
	}

	reg.Course = &course
	return helper.JsonCreated(c, "Unit registered", dto.ToRegistrationResponse(&reg))
}
