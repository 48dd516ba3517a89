package touchscreen

import "testing"

func TestAssignmentTableLookups(t *testing.T) {
	var tbl assignmentTable

	a := tbl.assign(Touch{ID: 1, X: 10, Y: 20}, JobCameraMove)
	if a == nil {
		t.Fatal("assign returned nil on an empty table")
	}
	if a.clientX != 10 || a.clientY != 20 {
		t.Errorf("assignment coords = (%v, %v), want (10, 20)", a.clientX, a.clientY)
	}

	if got := tbl.findByTouch(1); got != a {
		t.Error("findByTouch did not return the assignment")
	}
	if got := tbl.findByJob(JobCameraMove); got != a {
		t.Error("findByJob did not return the assignment")
	}
	if !tbl.touchIsAssigned(1) || tbl.touchIsAssigned(2) {
		t.Error("touchIsAssigned wrong")
	}
	if !tbl.jobIsAssigned(JobCameraMove) || tbl.jobIsAssigned(JobCursorMove) {
		t.Error("jobIsAssigned wrong")
	}
}

func TestAssignmentTableRejectsConflicts(t *testing.T) {
	var tbl assignmentTable
	tbl.assign(Touch{ID: 1}, JobCameraMove)

	if tbl.assign(Touch{ID: 1}, JobFirstPincher) != nil {
		t.Error("assign allowed a second job for the same touch")
	}
	if tbl.assign(Touch{ID: 2}, JobCameraMove) != nil {
		t.Error("assign allowed a second touch for the same job")
	}
	if tbl.count() != 1 {
		t.Errorf("count = %d, want 1 after rejected assigns", tbl.count())
	}
}

func TestAssignmentTableUnassign(t *testing.T) {
	var tbl assignmentTable
	tbl.assign(Touch{ID: 1}, JobCameraMove)
	tbl.assign(Touch{ID: 2}, JobFirstPincher)

	if !tbl.unassign(1, JobCameraMove) {
		t.Error("unassign failed for an existing entry")
	}
	if tbl.unassign(1, JobCameraMove) {
		t.Error("unassign succeeded twice")
	}
	// Both touch and job must match.
	if tbl.unassign(2, JobSecondPincher) {
		t.Error("unassign matched on touch alone")
	}
	if tbl.count() != 1 {
		t.Errorf("count = %d, want 1", tbl.count())
	}
}

func TestAssignmentTableRoundTrip(t *testing.T) {
	var tbl assignmentTable
	tbl.assign(Touch{ID: 1}, JobCameraMove)

	tbl.assign(Touch{ID: 2}, JobFirstPincher)
	tbl.unassign(2, JobFirstPincher)

	if tbl.count() != 1 {
		t.Fatalf("count = %d, want 1", tbl.count())
	}
	if tbl.findByTouch(1) == nil || tbl.findByTouch(2) != nil {
		t.Error("round trip did not restore the prior state")
	}
}

func TestAssignmentTablePreservesOrder(t *testing.T) {
	var tbl assignmentTable
	tbl.assign(Touch{ID: 3}, JobCursorMove)
	tbl.assign(Touch{ID: 1}, JobFirstPincher)
	tbl.assign(Touch{ID: 2}, JobSecondPincher)
	tbl.unassign(1, JobFirstPincher)

	want := []int64{3, 2}
	for i, a := range tbl.entries {
		if a.touchID != want[i] {
			t.Errorf("entry %d = touch %d, want %d", i, a.touchID, want[i])
		}
	}
}

func TestAssignmentTableReset(t *testing.T) {
	var tbl assignmentTable
	tbl.assign(Touch{ID: 1}, JobCameraMove)
	tbl.assign(Touch{ID: 2}, JobFirstPincher)
	tbl.reset()
	if tbl.count() != 0 {
		t.Errorf("count = %d, want 0 after reset", tbl.count())
	}
	if tbl.touchIsAssigned(1) {
		t.Error("reset left a touch assigned")
	}
}
