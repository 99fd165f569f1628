// file: internals/features/school/timetable/sessions/service/store.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "timetable_backend/internals/features/school/academics/classes/model"
	roomModel "timetable_backend/internals/features/school/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/school/academics/subjects/model"
	teacherModel "timetable_backend/internals/features/school/academics/teachers/model"
	"timetable_backend/internals/features/school/timetable/conflict"
	"timetable_backend/internals/features/school/timetable/grid"
	sessModel "timetable_backend/internals/features/school/timetable/sessions/model"
)

// Store is the persistence collaborator behind the conflict engine and the
// grid materializer. It satisfies both conflict.Store and grid.Store.
type Store struct {
	DB *gorm.DB
}

// NewStore accepts either the root handle or a transaction; binding a
// transaction makes every read (and its locks) part of that transaction.
func NewStore(db *gorm.DB) *Store { return &Store{DB: db} }

/* =========================
   conflict.Store
   ========================= */

// SessionsOnWeekday loads the committed same-day rows. Inside a write
// transaction the rows are locked (FOR UPDATE) so two concurrent
// validations against the same weekday serialize instead of both passing
// a check-then-act race.
func (s *Store) SessionsOnWeekday(ctx context.Context, weekday int) ([]conflict.Committed, error) {
	var rows []sessModel.ClassSessionModel
	if err := s.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_session_day_of_week = ?", weekday).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]conflict.Committed, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Committed())
	}
	return out, nil
}

func (s *Store) CountSessions(ctx context.Context, classID, subjectID, excludeID uuid.UUID) (int64, error) {
	db := s.DB.WithContext(ctx).Model(&sessModel.ClassSessionModel{}).
		Where("class_session_class_id = ? AND class_session_subject_id = ?", classID, subjectID)
	if excludeID != uuid.Nil {
		db = db.Where("class_session_id <> ?", excludeID)
	}
	var n int64
	if err := db.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) FindClassHeadcount(ctx context.Context, classID uuid.UUID) (int, bool, error) {
	var row classModel.ClassModel
	err := s.DB.WithContext(ctx).
		Select("class_headcount").
		First(&row, "class_id = ?", classID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return row.ClassHeadcount, true, nil
}

func (s *Store) FindLocationCapacity(ctx context.Context, loc conflict.LocationRef) (int, bool, error) {
	switch loc.Kind {
	case conflict.LocationRoom:
		var row roomModel.RoomModel
		err := s.DB.WithContext(ctx).
			Select("room_capacity").
			First(&row, "room_id = ?", loc.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		return row.RoomCapacity, true, nil
	case conflict.LocationLab:
		var row roomModel.LabModel
		err := s.DB.WithContext(ctx).
			Select("lab_capacity").
			First(&row, "lab_id = ?", loc.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		return row.LabCapacity, true, nil
	default:
		return 0, false, fmt.Errorf("store: unknown location kind %q", loc.Kind)
	}
}

func (s *Store) SubjectWeeklyFrequency(ctx context.Context, subjectID uuid.UUID) (int, bool, error) {
	var row subjectModel.SubjectModel
	err := s.DB.WithContext(ctx).
		Select("subject_weekly_frequency").
		First(&row, "subject_id = ?", subjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return row.SubjectWeeklyFrequency, true, nil
}

/* =========================
   grid.Store
   ========================= */

func (s *Store) ClassExists(ctx context.Context, classID uuid.UUID) (bool, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// SessionsForClass loads the class's committed week and resolves display
// names (subject/lab, teacher abbreviation, location code) for the grid.
// Dangling references degrade to empty strings, never abort the grid.
func (s *Store) SessionsForClass(ctx context.Context, classID uuid.UUID) ([]grid.Entry, error) {
	var rows []sessModel.ClassSessionModel
	if err := s.DB.WithContext(ctx).
		Where("class_session_class_id = ?", classID).
		Order("class_session_day_of_week ASC, class_session_start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]grid.Entry, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		e := grid.Entry{
			SessionID: r.ClassSessionID,
			Kind:      conflict.SessionKind(r.ClassSessionKind),
			SlotSpan:  r.ClassSessionSlotSpan,
			Weekday:   r.ClassSessionDayOfWeek,
			StartMin:  r.ClassSessionStartTime.Minutes(),
			EndMin:    r.ClassSessionEndTime.Minutes(),
		}
		e.SubjectName = s.displayName(ctx, r)
		if r.ClassSessionTeacherID != nil {
			var t teacherModel.TeacherModel
			if err := s.DB.WithContext(ctx).Select("teacher_abbr").
				First(&t, "teacher_id = ?", *r.ClassSessionTeacherID).Error; err == nil {
				e.TeacherAbbr = t.TeacherAbbr
			}
		}
		if loc := r.Location(); loc != nil {
			e.LocationCode = s.locationCode(ctx, *loc)
		}
		out = append(out, e)
	}
	return out, nil
}

// displayName: lab name for lab sessions (when referenced), else subject name.
func (s *Store) displayName(ctx context.Context, r *sessModel.ClassSessionModel) string {
	if r.ClassSessionLabID != nil {
		var lab roomModel.LabModel
		if err := s.DB.WithContext(ctx).Select("lab_name").
			First(&lab, "lab_id = ?", *r.ClassSessionLabID).Error; err == nil {
			return lab.LabName
		}
	}
	if r.ClassSessionSubjectID != nil {
		var sub subjectModel.SubjectModel
		if err := s.DB.WithContext(ctx).Select("subject_name").
			First(&sub, "subject_id = ?", *r.ClassSessionSubjectID).Error; err == nil {
			return sub.SubjectName
		}
	}
	return ""
}

func (s *Store) locationCode(ctx context.Context, loc conflict.LocationRef) string {
	switch loc.Kind {
	case conflict.LocationRoom:
		var room roomModel.RoomModel
		if err := s.DB.WithContext(ctx).Select("room_code").
			First(&room, "room_id = ?", loc.ID).Error; err == nil {
			return room.RoomCode
		}
	case conflict.LocationLab:
		var lab roomModel.LabModel
		if err := s.DB.WithContext(ctx).Select("lab_code").
			First(&lab, "lab_id = ?", loc.ID).Error; err == nil {
			return lab.LabCode
		}
	}
	return ""
}
