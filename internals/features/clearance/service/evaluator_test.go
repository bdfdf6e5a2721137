// file: internals/features/clearance/service/evaluator_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	clearanceModel "uniportal_backend/internals/features/clearance/model"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Fake store
========================================================= */

type fakeStore struct {
	students   map[uuid.UUID]*studentModel.Student
	fees       []feeModel.FeeRecord
	attendance []attendanceModel.AttendanceRecord
	results    map[string]*clearanceModel.ClearanceResult

	feeErr    error
	attErr    error
	upsertErr error

	upsertCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students: map[uuid.UUID]*studentModel.Student{},
		results:  map[string]*clearanceModel.ClearanceResult{},
	}
}

func resultKey(studentID uuid.UUID, year, sem string) string {
	return fmt.Sprintf("%s|%s|%s", studentID, year, sem)
}

func (f *fakeStore) FindStudentByID(_ context.Context, id uuid.UUID) (*studentModel.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (f *fakeStore) FeeRecordsByTerm(_ context.Context, studentID uuid.UUID, year, sem string) ([]feeModel.FeeRecord, error) {
	if f.feeErr != nil {
		return nil, f.feeErr
	}
	var out []feeModel.FeeRecord
	for _, r := range f.fees {
		if r.FeeRecordStudentID == studentID && r.FeeRecordAcademicYear == year && r.FeeRecordSemester == sem {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) FeeRecordsByYear(_ context.Context, studentID uuid.UUID, year string) ([]feeModel.FeeRecord, error) {
	if f.feeErr != nil {
		return nil, f.feeErr
	}
	var out []feeModel.FeeRecord
	for _, r := range f.fees {
		if r.FeeRecordStudentID == studentID && r.FeeRecordAcademicYear == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) AttendanceSince(_ context.Context, studentID uuid.UUID, from time.Time) ([]attendanceModel.AttendanceRecord, error) {
	if f.attErr != nil {
		return nil, f.attErr
	}
	var out []attendanceModel.AttendanceRecord
	for _, r := range f.attendance {
		if r.AttendanceRecordStudentID == studentID && !r.AttendanceRecordDate.Before(from) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) CachedResult(_ context.Context, studentID uuid.UUID, year, sem string) (*clearanceModel.ClearanceResult, error) {
	res, ok := f.results[resultKey(studentID, year, sem)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (f *fakeStore) UpsertResult(_ context.Context, res *clearanceModel.ClearanceResult) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cp := *res
	f.results[resultKey(res.ClearanceResultStudentID, res.ClearanceResultAcademicYear, res.ClearanceResultSemester)] = &cp
	return nil
}

/* =========================================================
   Fixtures
========================================================= */

const (
	testYear = "2025/2026"
	testSem  = "1"
)

var testNow = time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)

func newTestEvaluator(store *fakeStore) *Evaluator {
	ev := NewEvaluator(store)
	ev.Now = func() time.Time { return testNow }
	return ev
}

func addStudent(store *fakeStore) uuid.UUID {
	id := uuid.New()
	store.students[id] = &studentModel.Student{
		StudentID:           id,
		StudentRegNumber:    "BSC/2023/0142",
		StudentFullName:     "Test Student",
		StudentProgramCode:  "BSC-CS",
		StudentYearOfStudy:  3,
		StudentSemester:     testSem,
		StudentAcademicYear: testYear,
	}
	return id
}

func feeRow(studentID uuid.UUID, category, desc string, amount float64, status feeModel.FeeStatus, balance *float64) feeModel.FeeRecord {
	return feeModel.FeeRecord{
		FeeRecordID:           uuid.New(),
		FeeRecordStudentID:    studentID,
		FeeRecordCategory:     category,
		FeeRecordDescription:  desc,
		FeeRecordAmount:       amount,
		FeeRecordStatus:       status,
		FeeRecordBalanceDue:   balance,
		FeeRecordAcademicYear: testYear,
		FeeRecordSemester:     testSem,
	}
}

func addAttendance(store *fakeStore, studentID uuid.UUID, present, absent int) {
	day := testNow.AddDate(0, 0, -(present + absent))
	mark := func(status attendanceModel.AttendanceStatus) {
		store.attendance = append(store.attendance, attendanceModel.AttendanceRecord{
			AttendanceRecordID:        uuid.New(),
			AttendanceRecordStudentID: studentID,
			AttendanceRecordDate:      day,
			AttendanceRecordStatus:    status,
		})
		day = day.AddDate(0, 0, 1)
	}
	for i := 0; i < present; i++ {
		mark(attendanceModel.AttendanceStatusPresent)
	}
	for i := 0; i < absent; i++ {
		mark(attendanceModel.AttendanceStatusAbsent)
	}
}

func fptr(v float64) *float64 { return &v }

/* =========================================================
   Evaluate
========================================================= */

func TestEvaluateStudentNotFound(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)

	_, err := ev.Evaluate(context.Background(), uuid.New(), "", "")
	require.ErrorIs(t, err, ErrStudentNotFound)
	assert.Zero(t, store.upsertCalls, "no cache write on missing student")
}

func TestFinancialClearanceNoFeeRecords(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.False(t, v.Financial.Cleared)
	assert.Equal(t, "No fee records found", v.Financial.Notes)
	assert.Zero(t, v.Financial.TotalFees)
	assert.Zero(t, v.Financial.TotalPaid)
	assert.Zero(t, v.Financial.OutstandingBalance)
	assert.False(t, v.OverallCleared)
}

func TestFinancialClearanceAllPaid(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPaid, nil),
		feeRow(sid, feeModel.FeeCategoryLibrary, "Library fee", 150, feeModel.FeeStatusPaid, nil),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.True(t, v.Financial.Cleared)
	assert.Equal(t, 1150.0, v.Financial.TotalFees)
	assert.Equal(t, 1150.0, v.Financial.TotalPaid)
	assert.Zero(t, v.Financial.OutstandingBalance)
}

func TestFinancialClearancePartialBalance(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPartial, fptr(400)),
	)
	addAttendance(store, sid, 10, 0) // attendance cleared; financial still blocks

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.False(t, v.Financial.Cleared)
	assert.Equal(t, 400.0, v.Financial.OutstandingBalance)
	assert.True(t, v.Attendance.Cleared)
	assert.False(t, v.OverallCleared)
}

func TestFinancialClearancePendingWithoutBalanceDue(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryExamination, "Examination fee", 200, feeModel.FeeStatusPending, nil),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	// no balance_due on the row: the full amount counts as outstanding
	assert.Equal(t, 200.0, v.Financial.OutstandingBalance)
	assert.False(t, v.Financial.Cleared)
}

func TestFinancialClearanceBroadensToYearScope(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)

	other := feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 800, feeModel.FeeStatusPaid, nil)
	other.FeeRecordSemester = "2" // outside the requested semester
	store.fees = append(store.fees, other)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.True(t, v.Financial.Cleared, "year-wide scope should pick up the record")
	assert.Equal(t, 800.0, v.Financial.TotalFees)

	// The assignment gate does not broaden; its scope stays empty.
	assert.False(t, v.AssignmentAccess.HasAccess)
	assert.Equal(t, "No fee records found", v.AssignmentAccess.Notes)
}

/* =========================================================
   Assignment access
========================================================= */

func TestAssignmentAccessRounding(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	// paid 1 of 3: round(33.33) must be exactly 33
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 3, feeModel.FeeStatusPartial, fptr(2)),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.Equal(t, 33, v.AssignmentAccess.PercentagePaid)
	assert.False(t, v.AssignmentAccess.HasAccess)
}

func TestAssignmentAccessHalfPaidGrants(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPartial, fptr(500)),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.True(t, v.AssignmentAccess.HasAccess)
	assert.Equal(t, 50, v.AssignmentAccess.PercentagePaid)
	assert.Equal(t, 500.0, v.AssignmentAccess.RequiredAmount)
}

func TestAssignmentAccessShortfallReported(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPartial, fptr(700)),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.False(t, v.AssignmentAccess.HasAccess)
	assert.Equal(t, 200.0, v.AssignmentAccess.ShortfallAmount) // 500 required - 300 paid
}

func TestAssignmentAccessFallbackToAllRecords(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	// No tuition category and no tuition/fee keyword anywhere: the gate
	// must treat the entire set as tuition.
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryAccommodation, "Hostel block B", 600, feeModel.FeeStatusPaid, nil),
		feeRow(sid, "sports", "Sports levy", 400, feeModel.FeeStatusPending, nil),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, v.AssignmentAccess.TotalTuitionFees)
	assert.Equal(t, 600.0, v.AssignmentAccess.TotalTuitionPaid)
	assert.Equal(t, 60, v.AssignmentAccess.PercentagePaid)
	assert.True(t, v.AssignmentAccess.HasAccess)
}

func TestAssignmentAccessKeywordMatch(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	// Category is not "tuition" but the description carries the keyword.
	store.fees = append(store.fees,
		feeRow(sid, "semester-bill", "TUITION installment one", 500, feeModel.FeeStatusPaid, nil),
		feeRow(sid, feeModel.FeeCategoryAccommodation, "Hostel block B", 900, feeModel.FeeStatusPending, nil),
	)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.Equal(t, 500.0, v.AssignmentAccess.TotalTuitionFees, "hostel row must stay out of the tuition partition")
	assert.True(t, v.AssignmentAccess.HasAccess)
}

/* =========================================================
   Attendance
========================================================= */

func TestAttendanceNoRecordsInWindow(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.Zero(t, v.Attendance.Percentage)
	assert.False(t, v.Attendance.Cleared)
}

func TestAttendanceWindowStartPinsToFirstOfMonth(t *testing.T) {
	now := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), attendanceWindowStart(now))
}

func TestAttendanceIgnoresRecordsBeforeWindow(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)

	// 6 present marks well before the window, 1 absent inside it
	old := testNow.AddDate(0, -8, 0)
	for i := 0; i < 6; i++ {
		store.attendance = append(store.attendance, attendanceModel.AttendanceRecord{
			AttendanceRecordID:        uuid.New(),
			AttendanceRecordStudentID: sid,
			AttendanceRecordDate:      old.AddDate(0, 0, i),
			AttendanceRecordStatus:    attendanceModel.AttendanceStatusPresent,
		})
	}
	addAttendance(store, sid, 0, 1)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.Equal(t, 0, v.Attendance.Percentage)
	assert.Equal(t, 1, v.Attendance.TotalCount)
}

/* =========================================================
   Aggregation
========================================================= */

func TestOverallClearedCombinations(t *testing.T) {
	cases := []struct {
		name      string
		financial bool
		attend    bool
	}{
		{"both cleared", true, true},
		{"financial only", true, false},
		{"attendance only", false, true},
		{"neither", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			ev := newTestEvaluator(store)
			sid := addStudent(store)

			if tc.financial {
				store.fees = append(store.fees,
					feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPaid, nil))
			} else {
				// 60% paid: financial blocked but assignment access granted,
				// proving assignment access never feeds the overall AND.
				store.fees = append(store.fees,
					feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPartial, fptr(400)))
			}
			if tc.attend {
				addAttendance(store, sid, 9, 1)
			} else {
				addAttendance(store, sid, 1, 9)
			}

			v, err := ev.Evaluate(context.Background(), sid, "", "")
			require.NoError(t, err)

			assert.Equal(t, tc.financial, v.Financial.Cleared)
			assert.Equal(t, tc.attend, v.Attendance.Cleared)
			assert.True(t, v.AssignmentAccess.HasAccess)
			assert.Equal(t, tc.financial && tc.attend, v.OverallCleared)
		})
	}
}

func TestEvaluateEndToEndCleared(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPaid, nil))
	addAttendance(store, sid, 8, 2)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.True(t, v.Financial.Cleared)
	assert.Equal(t, 80, v.Attendance.Percentage)
	assert.True(t, v.Attendance.Cleared)
	assert.True(t, v.OverallCleared)

	// cached row mirrors the verdict, with cleared_at stamped
	cached, err := store.CachedResult(context.Background(), sid, testYear, testSem)
	require.NoError(t, err)
	assert.True(t, cached.ClearanceResultOverallCleared)
	require.NotNil(t, cached.ClearanceResultClearedAt)
	assert.Equal(t, testNow, *cached.ClearanceResultClearedAt)
	assert.Equal(t, 80, cached.ClearanceResultAttendancePercentage)
}

func TestEvaluateIdempotent(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPartial, fptr(250)))
	addAttendance(store, sid, 7, 3)

	first, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)
	second, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.Equal(t, first.Financial.Cleared, second.Financial.Cleared)
	assert.Equal(t, first.Attendance.Cleared, second.Attendance.Cleared)
	assert.Equal(t, first.AssignmentAccess.HasAccess, second.AssignmentAccess.HasAccess)
	assert.Equal(t, first.OverallCleared, second.OverallCleared)
	assert.Equal(t, 2, store.upsertCalls, "each evaluation overwrites the cache row")
	assert.Len(t, store.results, 1)
}

/* =========================================================
   Failure semantics
========================================================= */

func TestEvaluateFeeQueryFailureDegrades(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.feeErr = errors.New("connection reset")
	addAttendance(store, sid, 10, 0)

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err, "fee query failures must not raise")

	assert.False(t, v.Financial.Cleared)
	assert.Zero(t, v.Financial.TotalFees)
	assert.NotEmpty(t, v.Financial.Notes)
	assert.True(t, v.Attendance.Cleared, "the attendance gate still runs")
	assert.Empty(t, v.Error)
}

func TestEvaluateUpsertFailureReturnsErroredShape(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPaid, nil))
	addAttendance(store, sid, 10, 0)
	store.upsertErr = errors.New("write timeout")

	v, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, v.Error)
	assert.False(t, v.Financial.Cleared)
	assert.False(t, v.Attendance.Cleared)
	assert.False(t, v.AssignmentAccess.HasAccess)
	assert.False(t, v.OverallCleared)
	assert.Empty(t, store.results, "no partial cache write")
}

/* =========================================================
   QuickCheck & CheckAssignmentAccessOnly
========================================================= */

func TestQuickCheckWithoutCache(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)

	qv, err := ev.QuickCheck(context.Background(), sid)
	require.NoError(t, err)

	assert.False(t, qv.Cached)
	assert.False(t, qv.OverallCleared)
	assert.Contains(t, qv.Notes, "full clearance check")
	assert.Zero(t, store.upsertCalls, "quick check never evaluates")
}

func TestQuickCheckReturnsCachedRow(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPaid, nil))
	addAttendance(store, sid, 9, 1)

	_, err := ev.Evaluate(context.Background(), sid, "", "")
	require.NoError(t, err)

	qv, err := ev.QuickCheck(context.Background(), sid)
	require.NoError(t, err)

	assert.True(t, qv.Cached)
	assert.True(t, qv.OverallCleared)
	assert.True(t, qv.FinancialCleared)
	assert.True(t, qv.AttendanceCleared)
	require.NotNil(t, qv.CheckedAt)
}

func TestCheckAssignmentAccessOnlyCacheShortCircuit(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	store.fees = append(store.fees,
		feeRow(sid, feeModel.FeeCategoryTuition, "Tuition fees", 1000, feeModel.FeeStatusPartial, fptr(400)))

	// First call: no cache row yet, so a full evaluation runs.
	first, err := ev.CheckAssignmentAccessOnly(context.Background(), sid)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.True(t, first.HasAccess)
	assert.Equal(t, 1, store.upsertCalls)

	// Second call: the cache row exists, so nothing is recomputed.
	second, err := ev.CheckAssignmentAccessOnly(context.Background(), sid)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.True(t, second.HasAccess)
	assert.Equal(t, 1, store.upsertCalls, "cache hit must not trigger another evaluation")
}

/* =========================================================
   DebugAttendance
========================================================= */

func TestDebugAttendance(t *testing.T) {
	store := newFakeStore()
	ev := newTestEvaluator(store)
	sid := addStudent(store)
	addAttendance(store, sid, 3, 1)

	audit, err := ev.DebugAttendance(context.Background(), sid)
	require.NoError(t, err)

	assert.Equal(t, 4, audit.Total)
	assert.Equal(t, 3, audit.Present)
	assert.Equal(t, 75, audit.Percentage)
	assert.Len(t, audit.Records, 4)
	assert.Equal(t, attendanceWindowStart(testNow), audit.WindowStart)
	assert.Zero(t, store.upsertCalls, "diagnostics must have no side effects")
}

/* =========================================================
   Percentage helpers
========================================================= */

func TestRoundPercentage(t *testing.T) {
	assert.Equal(t, 0, roundPercentage(0, 0))
	assert.Equal(t, 0, roundPercentage(5, 0))
	assert.Equal(t, 33, roundPercentage(1, 3))
	assert.Equal(t, 67, roundPercentage(2, 3))
	assert.Equal(t, 100, roundPercentage(10, 10))
	assert.Equal(t, 75, roundPercentage(3, 4))
}

func TestRoundRatioPercentage(t *testing.T) {
	assert.Equal(t, 0, roundRatioPercentage(10, 0))
	assert.Equal(t, 33, roundRatioPercentage(1, 3))
	assert.Equal(t, 50, roundRatioPercentage(500, 1000))
}
