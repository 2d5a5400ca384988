package services

import (
	"context"
	"sort"
	"time"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/repositories"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// In-memory store implementations backing the service tests.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.add(user)
	return user.ID, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ListUsers(_ context.Context, category *models.Category) ([]*models.User, error) {
	var out []*models.User
	for _, user := range f.users {
		if category == nil || user.Category == *category {
			out = append(out, user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCourseStore struct {
	courses []*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{}
}

func (f *fakeCourseStore) add(course *models.Course) *models.Course {
	f.nextID++
	course.ID = f.nextID
	f.courses = append(f.courses, course)
	return course
}

func (f *fakeCourseStore) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	for _, existing := range f.courses {
		if existing.CourseCode == course.CourseCode {
			return 0, apperrors.ErrCourseCodeAlreadyExists
		}
	}
	f.add(course)
	return course.ID, nil
}

func (f *fakeCourseStore) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	for _, course := range f.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) GetCourseByCode(_ context.Context, code string) (*models.Course, error) {
	for _, course := range f.courses {
		if course.CourseCode == code {
			return course, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) ListCourses(_ context.Context, offset uint64, limit int) ([]*models.Course, error) {
	start := int(offset)
	if start >= len(f.courses) {
		return nil, nil
	}
	end := start + limit
	if end > len(f.courses) {
		end = len(f.courses)
	}
	return f.courses[start:end], nil
}

func (f *fakeCourseStore) CountCourses(_ context.Context) (int64, error) {
	return int64(len(f.courses)), nil
}

func (f *fakeCourseStore) ListCoursesByInstructor(_ context.Context, instructorID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, course := range f.courses {
		if course.InstructorID == instructorID {
			out = append(out, course)
		}
	}
	return out, nil
}

type fakeEnrollmentStore struct {
	enrollments []*models.Enrollment
	courses     *fakeCourseStore
	nextID      int64

	// failNextUpdate simulates a decision landing between read and update
	failNextUpdate bool
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{courses: courses}
}

func (f *fakeEnrollmentStore) CreateEnrollment(_ context.Context, enrollment *models.Enrollment) (int64, error) {
	for _, existing := range f.enrollments {
		if existing.CourseID == enrollment.CourseID && existing.StudentID == enrollment.StudentID {
			return 0, apperrors.ErrAlreadyEnrolled
		}
	}
	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments = append(f.enrollments, enrollment)
	return enrollment.ID, nil
}

func (f *fakeEnrollmentStore) GetByCourseAndStudent(_ context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	for _, enrollment := range f.enrollments {
		if enrollment.CourseID == courseID && enrollment.StudentID == studentID {
			return enrollment, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentStore) UpdateStatus(_ context.Context, id int64, status models.EnrollmentStatus, version int64) error {
	if f.failNextUpdate {
		f.failNextUpdate = false
		return apperrors.ErrConflict
	}
	for _, enrollment := range f.enrollments {
		if enrollment.ID == id {
			if enrollment.Version != version {
				return apperrors.ErrConflict
			}
			enrollment.Status = status
			enrollment.Version++
			return nil
		}
	}
	return apperrors.ErrConflict
}

func (f *fakeEnrollmentStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, enrollment := range f.enrollments {
		if enrollment.CourseID == courseID {
			out = append(out, enrollment)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByCourseAndStatus(_ context.Context, courseID int64, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, enrollment := range f.enrollments {
		if enrollment.CourseID == courseID && enrollment.Status == status {
			out = append(out, enrollment)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByStudent(ctx context.Context, studentID int64) ([]*repositories.CourseEnrollment, error) {
	var out []*repositories.CourseEnrollment
	for _, enrollment := range f.enrollments {
		if enrollment.StudentID != studentID {
			continue
		}
		course, err := f.courses.GetCourseByID(ctx, enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		out = append(out, &repositories.CourseEnrollment{Enrollment: *enrollment, Course: *course})
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListPendingByInstructor(ctx context.Context, instructorID int64) ([]*repositories.CourseEnrollment, error) {
	courses, _ := f.courses.ListCoursesByInstructor(ctx, instructorID)
	var out []*repositories.CourseEnrollment
	for _, course := range courses {
		for _, enrollment := range f.enrollments {
			if enrollment.CourseID == course.ID && enrollment.Status == models.StatusPending {
				out = append(out, &repositories.CourseEnrollment{Enrollment: *enrollment, Course: *course})
			}
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListPendingForFAByDepartment(ctx context.Context, department string) ([]*repositories.CourseEnrollment, error) {
	var out []*repositories.CourseEnrollment
	for _, course := range f.courses.courses {
		for _, enrollment := range f.enrollments {
			if enrollment.CourseID == course.ID &&
				enrollment.Department == department &&
				enrollment.Status == models.StatusPendingForFA {
				out = append(out, &repositories.CourseEnrollment{Enrollment: *enrollment, Course: *course})
			}
		}
	}
	return out, nil
}

type otpKey struct {
	email   string
	purpose models.OTPPurpose
}

type fakeOTPStore struct {
	codes  map[otpKey]*models.OTPCode
	nextID int64
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: make(map[otpKey]*models.OTPCode)}
}

func (f *fakeOTPStore) Upsert(_ context.Context, otp *models.OTPCode) error {
	f.nextID++
	otp.ID = f.nextID
	f.codes[otpKey{otp.Email, otp.Purpose}] = otp
	return nil
}

func (f *fakeOTPStore) GetLatest(_ context.Context, email string, purpose models.OTPPurpose) (*models.OTPCode, error) {
	otp, ok := f.codes[otpKey{email, purpose}]
	if !ok || otp.IsConsumed() {
		return nil, apperrors.ErrOTPNotFound
	}
	return otp, nil
}

func (f *fakeOTPStore) MarkConsumed(_ context.Context, id int64, consumedAt time.Time) error {
	for _, otp := range f.codes {
		if otp.ID == id {
			otp.ConsumedAt = &consumedAt
			return nil
		}
	}
	return apperrors.ErrOTPNotFound
}

// fakeEmailService records outgoing codes instead of sending mail
type fakeEmailService struct {
	lastCode  string
	lastEmail string
}

func (f *fakeEmailService) SendSignUpOTP(toEmail, code string) error {
	f.lastEmail = toEmail
	f.lastCode = code
	return nil
}

func (f *fakeEmailService) SendLoginOTP(toEmail, _ string, code string) error {
	f.lastEmail = toEmail
	f.lastCode = code
	return nil
}
