package touchscreen

// assignment pairs a touch with its job and the job's mutable fields.
// Which fields are meaningful depends on the job:
//   - JobCursorMove: cursorPose, isFirstFrame, clientX/clientY
//   - JobCameraMove: clientX/clientY, delta
//   - JobFirstPincher / JobSecondPincher: clientX/clientY
type assignment struct {
	touchID int64
	job     JobType

	cursorPose   Pose
	isFirstFrame bool

	clientX float64
	clientY float64
	delta   Vec2
}

// assignmentTable is a small ordered collection of active assignments.
// At most four entries ever exist (one per job), so lookups are linear.
// Insertion order is preserved.
type assignmentTable struct {
	entries []*assignment
}

// assign creates a new assignment binding touch to job and returns it.
// Returns nil if the touch or the job is already assigned; callers are
// expected to have checked both, so a nil return indicates caller misuse
// and leaves the table untouched.
func (t *assignmentTable) assign(touch Touch, job JobType) *assignment {
	if t.touchIsAssigned(touch.ID) || t.jobIsAssigned(job) {
		return nil
	}
	a := &assignment{
		touchID: touch.ID,
		job:     job,
		clientX: touch.X,
		clientY: touch.Y,
	}
	t.entries = append(t.entries, a)
	return a
}

// unassign removes the entry matching both touchID and job.
// Reports whether an entry was removed.
func (t *assignmentTable) unassign(touchID int64, job JobType) bool {
	for i, a := range t.entries {
		if a.touchID == touchID && a.job == job {
			copy(t.entries[i:], t.entries[i+1:])
			t.entries[len(t.entries)-1] = nil
			t.entries = t.entries[:len(t.entries)-1]
			return true
		}
	}
	return false
}

// findByTouch returns the assignment for a touch identity, or nil.
func (t *assignmentTable) findByTouch(touchID int64) *assignment {
	for _, a := range t.entries {
		if a.touchID == touchID {
			return a
		}
	}
	return nil
}

// findByJob returns the assignment holding a job, or nil.
func (t *assignmentTable) findByJob(job JobType) *assignment {
	for _, a := range t.entries {
		if a.job == job {
			return a
		}
	}
	return nil
}

func (t *assignmentTable) touchIsAssigned(touchID int64) bool {
	return t.findByTouch(touchID) != nil
}

func (t *assignmentTable) jobIsAssigned(job JobType) bool {
	return t.findByJob(job) != nil
}

// count returns the number of active assignments.
func (t *assignmentTable) count() int {
	return len(t.entries)
}

// reset drops all assignments.
func (t *assignmentTable) reset() {
	for i := range t.entries {
		t.entries[i] = nil
	}
	t.entries = t.entries[:0]
}
