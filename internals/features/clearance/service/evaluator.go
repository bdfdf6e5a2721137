// file: internals/features/clearance/service/evaluator.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
	clearanceModel "uniportal_backend/internals/features/clearance/model"
	"uniportal_backend/internals/features/clearance/repository"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
)

var (
	// ErrStudentNotFound is the only hard failure Evaluate surfaces; every
	// other problem degrades into a structured verdict.
	ErrStudentNotFound = errors.New("student not found")
)

const (
	attendanceThresholdPct       = 75
	assignmentAccessThresholdPct = 50
	attendanceWindowMonths       = 4

	noFeeRecordsNote = "No fee records found"
)

/* =========================================================
   Result shapes
========================================================= */

type FinancialGate struct {
	Cleared            bool     `json:"cleared"`
	TotalFees          float64  `json:"total_fees"`
	TotalPaid          float64  `json:"total_paid"`
	OutstandingBalance float64  `json:"outstanding_balance"`
	Notes              string   `json:"notes"`
	Details            []string `json:"details"`
}

type AssignmentGate struct {
	HasAccess        bool     `json:"has_access"`
	TotalTuitionFees float64  `json:"total_tuition_fees"`
	TotalTuitionPaid float64  `json:"total_tuition_paid"`
	PercentagePaid   int      `json:"percentage_paid"`
	RequiredAmount   float64  `json:"required_amount"`
	ShortfallAmount  float64  `json:"shortfall_amount"`
	Notes            string   `json:"notes"`
	Details          []string `json:"details"`
}

type AttendanceGate struct {
	Cleared      bool   `json:"cleared"`
	Percentage   int    `json:"percentage"`
	PresentCount int    `json:"present_count"`
	TotalCount   int    `json:"total_count"`
	Notes        string `json:"notes"`
}

// Verdict is the full point-in-time outcome of one evaluation.
type Verdict struct {
	StudentID    uuid.UUID `json:"student_id"`
	AcademicYear string    `json:"academic_year"`
	Semester     string    `json:"semester"`

	Financial        FinancialGate  `json:"financial"`
	AssignmentAccess AssignmentGate `json:"assignment_access"`
	Attendance       AttendanceGate `json:"attendance"`

	OverallCleared bool      `json:"overall_cleared"`
	EvaluatedAt    time.Time `json:"evaluated_at"`

	// Error is set only on the "errored" shape (all gates false, nothing
	// persisted).
	Error string `json:"error,omitempty"`
}

// QuickVerdict is the cache-only answer QuickCheck gives.
type QuickVerdict struct {
	StudentID        uuid.UUID  `json:"student_id"`
	AcademicYear     string     `json:"academic_year"`
	Semester         string     `json:"semester"`
	Cached            bool       `json:"cached"`
	OverallCleared    bool       `json:"overall_cleared"`
	FinancialCleared  bool       `json:"financial_cleared"`
	AttendanceCleared bool       `json:"attendance_cleared"`
	AssignmentAccess  bool       `json:"assignment_access"`
	Notes             string     `json:"notes"`
	CheckedAt         *time.Time `json:"checked_at,omitempty"`
}

// AccessVerdict answers the coursework-submission gate alone.
type AccessVerdict struct {
	StudentID uuid.UUID `json:"student_id"`
	HasAccess bool      `json:"has_access"`
	Cached    bool      `json:"cached"`
	Notes     string    `json:"notes"`
}

// AttendanceAudit is the diagnostic payload; it has no side effects.
type AttendanceAudit struct {
	StudentID   uuid.UUID                          `json:"student_id"`
	WindowStart time.Time                          `json:"window_start"`
	WindowEnd   time.Time                          `json:"window_end"`
	Records     []attendanceModel.AttendanceRecord `json:"records"`
	Present     int                                `json:"present"`
	Total       int                                `json:"total"`
	Percentage  int                                `json:"percentage"`
}

/* =========================================================
   Evaluator
========================================================= */

// Evaluator derives the exam-clearance verdict for one student/term and
// caches it. All state of record lives in the store; the evaluator itself
// holds none.
type Evaluator struct {
	store repository.Store

	// Now is swappable in tests; the attendance window is anchored to it.
	Now func() time.Time
}

func NewEvaluator(store repository.Store) *Evaluator {
	return &Evaluator{store: store, Now: time.Now}
}

// Evaluate recomputes all three gates and upserts the cached result.
// academicYear/semester fall back to the student's own term when empty.
func (e *Evaluator) Evaluate(ctx context.Context, studentID uuid.UUID, academicYear, semester string) (*Verdict, error) {
	student, err := e.store.FindStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		log.Printf("[ERROR] clearance: student lookup %s: %v", studentID, err)
		return e.erroredVerdict(studentID, academicYear, semester, err), nil
	}

	year := academicYear
	if year == "" {
		year = student.StudentAcademicYear
	}
	sem := semester
	if sem == "" {
		sem = student.StudentSemester
	}

	now := e.Now()

	financial := e.financialClearance(ctx, studentID, year, sem)
	assignment := e.assignmentAccess(ctx, studentID, year, sem)
	attendance := e.attendanceClearance(ctx, studentID, now)

	// Assignment access gates coursework submission, not exam entry, so it
	// stays out of the overall AND.
	overall := financial.Cleared && attendance.Cleared

	verdict := &Verdict{
		StudentID:        studentID,
		AcademicYear:     year,
		Semester:         sem,
		Financial:        financial,
		AssignmentAccess: assignment,
		Attendance:       attendance,
		OverallCleared:   overall,
		EvaluatedAt:      now,
	}

	if err := e.store.UpsertResult(ctx, verdict.toResultRow(now)); err != nil {
		log.Printf("[ERROR] clearance: upsert for %s %s/%s: %v", studentID, year, sem, err)
		return e.erroredVerdict(studentID, year, sem, err), nil
	}

	return verdict, nil
}

// QuickCheck returns the cached verdict for the student's own current term,
// or a deterministic "needs full check" placeholder. It never escalates to
// a full evaluation; that is the caller's call.
func (e *Evaluator) QuickCheck(ctx context.Context, studentID uuid.UUID) (*QuickVerdict, error) {
	student, err := e.store.FindStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	qv := &QuickVerdict{
		StudentID:    studentID,
		AcademicYear: student.StudentAcademicYear,
		Semester:     student.StudentSemester,
	}

	cached, err := e.store.CachedResult(ctx, studentID, student.StudentAcademicYear, student.StudentSemester)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] clearance: cached lookup for %s: %v", studentID, err)
		}
		qv.Notes = "No cached clearance result. Run a full clearance check."
		return qv, nil
	}

	qv.Cached = true
	qv.OverallCleared = cached.ClearanceResultOverallCleared
	qv.FinancialCleared = cached.ClearanceResultFinancialCleared
	qv.AttendanceCleared = cached.ClearanceResultAttendanceCleared
	qv.AssignmentAccess = cached.ClearanceResultAssignmentAccess
	qv.Notes = cached.ClearanceResultFinancialNotes
	checkedAt := cached.ClearanceResultUpdatedAt
	qv.CheckedAt = &checkedAt
	return qv, nil
}

// CheckAssignmentAccessOnly prefers the cached assignment_access flag and
// only falls back to a full evaluation when no cache row exists. A cache
// hit short-circuits the other gates entirely.
func (e *Evaluator) CheckAssignmentAccessOnly(ctx context.Context, studentID uuid.UUID) (*AccessVerdict, error) {
	student, err := e.store.FindStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if cached, err := e.store.CachedResult(ctx, studentID, student.StudentAcademicYear, student.StudentSemester); err == nil {
		return &AccessVerdict{
			StudentID: studentID,
			HasAccess: cached.ClearanceResultAssignmentAccess,
			Cached:    true,
			Notes:     cached.ClearanceResultAssignmentNotes,
		}, nil
	}

	verdict, err := e.Evaluate(ctx, studentID, "", "")
	if err != nil {
		return nil, err
	}
	return &AccessVerdict{
		StudentID: studentID,
		HasAccess: verdict.AssignmentAccess.HasAccess,
		Cached:    false,
		Notes:     verdict.AssignmentAccess.Notes,
	}, nil
}

// DebugAttendance exposes the raw in-window rows plus the computed
// percentage for manual auditing.
func (e *Evaluator) DebugAttendance(ctx context.Context, studentID uuid.UUID) (*AttendanceAudit, error) {
	if _, err := e.store.FindStudentByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	now := e.Now()
	from := attendanceWindowStart(now)
	rows, err := e.store.AttendanceSince(ctx, studentID, from)
	if err != nil {
		return nil, err
	}

	present := 0
	for _, r := range rows {
		if r.AttendanceRecordStatus == attendanceModel.AttendanceStatusPresent {
			present++
		}
	}

	return &AttendanceAudit{
		StudentID:   studentID,
		WindowStart: from,
		WindowEnd:   now,
		Records:     rows,
		Present:     present,
		Total:       len(rows),
		Percentage:  roundPercentage(present, len(rows)),
	}, nil
}

/* =========================================================
   Gate: financial clearance
========================================================= */

func (e *Evaluator) financialClearance(ctx context.Context, studentID uuid.UUID, year, sem string) FinancialGate {
	records, err := e.store.FeeRecordsByTerm(ctx, studentID, year, sem)
	if err != nil {
		log.Printf("[WARN] clearance: fee records for %s %s/%s: %v", studentID, year, sem, err)
		return FinancialGate{
			Notes:   "Fee records are currently unavailable",
			Details: []string{"✗ Could not load fee records"},
		}
	}

	// Broaden to the whole academic year when the semester scope is empty.
	if len(records) == 0 {
		records, err = e.store.FeeRecordsByYear(ctx, studentID, year)
		if err != nil {
			log.Printf("[WARN] clearance: fee records for %s %s: %v", studentID, year, err)
			return FinancialGate{
				Notes:   "Fee records are currently unavailable",
				Details: []string{"✗ Could not load fee records"},
			}
		}
	}

	if len(records) == 0 {
		return FinancialGate{
			Notes:   noFeeRecordsNote,
			Details: []string{"✗ " + noFeeRecordsNote},
		}
	}

	var totalFees, totalPaid, outstanding float64
	for _, r := range records {
		totalFees += r.FeeRecordAmount
		if r.FeeRecordStatus == feeModel.FeeStatusPaid {
			totalPaid += r.FeeRecordAmount
		} else if r.FeeRecordBalanceDue != nil {
			outstanding += *r.FeeRecordBalanceDue
		} else {
			outstanding += r.FeeRecordAmount
		}
	}

	gate := FinancialGate{
		Cleared:            outstanding == 0,
		TotalFees:          totalFees,
		TotalPaid:          totalPaid,
		OutstandingBalance: outstanding,
	}

	gate.Details = []string{
		fmt.Sprintf("✓ Total billed: %.2f", totalFees),
		fmt.Sprintf("✓ Total paid: %.2f", totalPaid),
	}
	if gate.Cleared {
		gate.Details = append(gate.Details, "✓ Outstanding balance: 0.00")
		gate.Notes = "All fees settled. Financial clearance granted."
	} else {
		gate.Details = append(gate.Details, fmt.Sprintf("✗ Outstanding balance: %.2f", outstanding))
		gate.Notes = fmt.Sprintf("Outstanding balance of %.2f must be settled before examinations.", outstanding)
	}
	return gate
}

/* =========================================================
   Gate: assignment access (coursework submission)
========================================================= */

func (e *Evaluator) assignmentAccess(ctx context.Context, studentID uuid.UUID, year, sem string) AssignmentGate {
	// No year-only broadening here — the gate reads the requested term only.
	records, err := e.store.FeeRecordsByTerm(ctx, studentID, year, sem)
	if err != nil {
		log.Printf("[WARN] clearance: assignment fee records for %s %s/%s: %v", studentID, year, sem, err)
		return AssignmentGate{
			Notes:   "Fee records are currently unavailable",
			Details: []string{"✗ Could not load fee records"},
		}
	}

	if len(records) == 0 {
		return AssignmentGate{
			Notes:   noFeeRecordsNote,
			Details: []string{"✗ " + noFeeRecordsNote},
		}
	}

	var tuitionFees, tuitionPaid float64
	for _, r := range records {
		if !isTuitionLike(r) {
			continue
		}
		tuitionFees += r.FeeRecordAmount
		tuitionPaid += r.PaidAmount()
	}

	// Legacy rows may carry neither the tuition category nor a keyword; in
	// that case treat the whole record set as tuition.
	if tuitionFees == 0 {
		tuitionFees, tuitionPaid = 0, 0
		for _, r := range records {
			tuitionFees += r.FeeRecordAmount
			tuitionPaid += r.PaidAmount()
		}
	}

	pct := roundRatioPercentage(tuitionPaid, tuitionFees)
	gate := AssignmentGate{
		HasAccess:        pct >= assignmentAccessThresholdPct,
		TotalTuitionFees: tuitionFees,
		TotalTuitionPaid: tuitionPaid,
		PercentagePaid:   pct,
		RequiredAmount:   tuitionFees * 0.5,
	}

	gate.Details = []string{
		fmt.Sprintf("✓ Tuition billed: %.2f", tuitionFees),
		fmt.Sprintf("✓ Tuition paid: %.2f (%d%%)", tuitionPaid, pct),
	}
	if gate.HasAccess {
		gate.Details = append(gate.Details, fmt.Sprintf("✓ Minimum required: %.2f", gate.RequiredAmount))
		gate.Notes = fmt.Sprintf("Tuition %d%% paid. Coursework submission enabled.", pct)
	} else {
		gate.ShortfallAmount = gate.RequiredAmount - tuitionPaid
		if gate.ShortfallAmount < 0 {
			gate.ShortfallAmount = 0
		}
		gate.Details = append(gate.Details,
			fmt.Sprintf("✗ Minimum required: %.2f (shortfall %.2f)", gate.RequiredAmount, gate.ShortfallAmount))
		gate.Notes = fmt.Sprintf("Pay at least %d%% of tuition to submit coursework. Shortfall: %.2f",
			assignmentAccessThresholdPct, gate.ShortfallAmount)
	}
	return gate
}

// isTuitionLike classifies a fee row for the assignment-access gate: the
// tuition category, or a description mentioning tuition/fee.
func isTuitionLike(r feeModel.FeeRecord) bool {
	if strings.EqualFold(r.FeeRecordCategory, feeModel.FeeCategoryTuition) {
		return true
	}
	desc := strings.ToLower(r.FeeRecordDescription)
	return strings.Contains(desc, "tuition") || strings.Contains(desc, "fee")
}

/* =========================================================
   Gate: attendance clearance
========================================================= */

// attendanceWindowStart pins the window to day 1 of the month four calendar
// months before now. The window tracks "now", not the requested term, so an
// evaluation for a past term reflects current attendance.
func attendanceWindowStart(now time.Time) time.Time {
	shifted := now.AddDate(0, -attendanceWindowMonths, 0)
	return time.Date(shifted.Year(), shifted.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (e *Evaluator) attendanceClearance(ctx context.Context, studentID uuid.UUID, now time.Time) AttendanceGate {
	from := attendanceWindowStart(now)
	rows, err := e.store.AttendanceSince(ctx, studentID, from)
	if err != nil {
		log.Printf("[WARN] clearance: attendance for %s: %v", studentID, err)
		return AttendanceGate{Notes: "Attendance records are currently unavailable"}
	}

	if len(rows) == 0 {
		return AttendanceGate{
			Notes: fmt.Sprintf("No attendance records in the last %d months", attendanceWindowMonths),
		}
	}

	present := 0
	for _, r := range rows {
		if r.AttendanceRecordStatus == attendanceModel.AttendanceStatusPresent {
			present++
		}
	}

	pct := roundPercentage(present, len(rows))
	gate := AttendanceGate{
		Cleared:      pct >= attendanceThresholdPct,
		Percentage:   pct,
		PresentCount: present,
		TotalCount:   len(rows),
	}
	if gate.Cleared {
		gate.Notes = fmt.Sprintf("Attendance %d%% over the last %d months. Requirement met.", pct, attendanceWindowMonths)
	} else {
		gate.Notes = fmt.Sprintf("Attendance %d%% is below the required %d%%.", pct, attendanceThresholdPct)
	}
	return gate
}

/* =========================================================
   Arithmetic & persistence helpers
========================================================= */

// roundPercentage rounds count/total to the nearest whole percent; a zero
// denominator yields 0, never a division error.
func roundPercentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func roundRatioPercentage(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

func (v *Verdict) toResultRow(now time.Time) *clearanceModel.ClearanceResult {
	row := &clearanceModel.ClearanceResult{
		ClearanceResultStudentID:    v.StudentID,
		ClearanceResultAcademicYear: v.AcademicYear,
		ClearanceResultSemester:     v.Semester,

		ClearanceResultFinancialCleared:  v.Financial.Cleared,
		ClearanceResultAttendanceCleared: v.Attendance.Cleared,
		ClearanceResultAssignmentAccess:  v.AssignmentAccess.HasAccess,
		ClearanceResultOverallCleared:    v.OverallCleared,

		ClearanceResultFinancialNotes:  v.Financial.Notes,
		ClearanceResultAttendanceNotes: v.Attendance.Notes,
		ClearanceResultAssignmentNotes: v.AssignmentAccess.Notes,

		ClearanceResultFinancialDetails:  mustJSONLines(v.Financial.Details),
		ClearanceResultAssignmentDetails: mustJSONLines(v.AssignmentAccess.Details),
		ClearanceResultAttendanceDetails: mustJSONLines(nil),

		ClearanceResultAttendancePercentage: v.Attendance.Percentage,
		ClearanceResultUpdatedAt:            now,
	}
	if v.OverallCleared {
		clearedAt := now
		row.ClearanceResultClearedAt = &clearedAt
	}
	return row
}

func mustJSONLines(lines []string) datatypes.JSON {
	if len(lines) == 0 {
		return datatypes.JSON("[]")
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// erroredVerdict is the SystemError shape: every gate false, Error set,
// nothing persisted.
func (e *Evaluator) erroredVerdict(studentID uuid.UUID, year, sem string, cause error) *Verdict {
	return &Verdict{
		StudentID:    studentID,
		AcademicYear: year,
		Semester:     sem,
		EvaluatedAt:  e.Now(),
		Error:        cause.Error(),
	}
}
