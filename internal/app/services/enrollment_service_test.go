package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	service     *EnrollmentService
	users       *fakeUserStore
	courses     *fakeCourseStore
	enrollments *fakeEnrollmentStore
	instructor  *models.User
	advisor     *models.User
	student     *models.User
	course      *models.Course
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	users := newFakeUserStore()
	courses := newFakeCourseStore()
	enrollments := newFakeEnrollmentStore(courses)

	instructor := users.add(&models.User{
		FullName:   "Alan Turing",
		Email:      "turing@eims.edu",
		Category:   models.CategoryInstructor,
		Department: "Computer Science",
	})
	advisor := users.add(&models.User{
		FullName:         "Grace Hopper",
		Email:            "hopper@eims.edu",
		Category:         models.CategoryInstructor,
		Department:       "Computer Science",
		IsFacultyAdvisor: true,
	})
	student := users.add(&models.User{
		FullName:   "Ada Lovelace",
		Email:      "ada@eims.edu",
		Category:   models.CategoryStudent,
		Department: "Computer Science",
	})
	course := courses.add(&models.Course{
		Title:        "Algorithms",
		CourseCode:   "CS201",
		Credits:      4,
		InstructorID: instructor.ID,
	})

	return &enrollmentFixture{
		service:     NewEnrollmentService(enrollments, courses, users, zerolog.Nop()),
		users:       users,
		courses:     courses,
		enrollments: enrollments,
		instructor:  instructor,
		advisor:     advisor,
		student:     student,
		course:      course,
	}
}

func (f *enrollmentFixture) enroll(t *testing.T) *models.Enrollment {
	t.Helper()
	enrollment, err := f.service.Enroll(context.Background(), f.student.ID, f.course.ID)
	require.NoError(t, err)
	return enrollment
}

func (f *enrollmentFixture) decision(courseID, studentID int64, status string) *dto.UpdateEnrollmentRequest {
	return &dto.UpdateEnrollmentRequest{CourseID: courseID, StudentID: studentID, Status: status}
}

func TestEnrollCreatesPendingRequestWithSnapshot(t *testing.T) {
	f := newEnrollmentFixture(t)

	enrollment := f.enroll(t)

	assert.Equal(t, models.StatusPending, enrollment.Status)
	assert.Equal(t, f.student.FullName, enrollment.StudentName)
	assert.Equal(t, f.student.Email, enrollment.StudentEmail)
	assert.Equal(t, f.student.Department, enrollment.Department)
	assert.False(t, enrollment.EnrollmentDate.IsZero())
}

func TestEnrollTwiceReturnsAlreadyEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)

	_, err := f.service.Enroll(context.Background(), f.student.ID, f.course.ID)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollUnknownCourseReturnsNotFound(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.service.Enroll(context.Background(), f.student.ID, 999)

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestInstructorForwardsPendingEnrollment(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)

	err := f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA"))

	require.NoError(t, err)
	enrollment, err := f.enrollments.GetByCourseAndStudent(context.Background(), f.course.ID, f.student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingForFA, enrollment.Status)
}

func TestInstructorRejectsPendingEnrollment(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)

	err := f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Rejected"))

	require.NoError(t, err)
	enrollment, _ := f.enrollments.GetByCourseAndStudent(context.Background(), f.course.ID, f.student.ID)
	assert.Equal(t, models.StatusRejected, enrollment.Status)
}

func TestInstructorCannotApproveDirectly(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)

	err := f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved"))

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNonOwnerInstructorCannotDecide(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	other := f.users.add(&models.User{
		FullName:   "Other Instructor",
		Email:      "other@eims.edu",
		Category:   models.CategoryInstructor,
		Department: "Mathematics",
	})

	err := f.service.InstructorDecide(context.Background(), other.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA"))

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestInstructorDecisionOnForwardedEnrollmentIsRejected(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))

	err := f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAdvisorApprovesForwardedEnrollment(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))

	err := f.service.AdvisorDecide(context.Background(), f.advisor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved"))

	require.NoError(t, err)
	enrollment, _ := f.enrollments.GetByCourseAndStudent(context.Background(), f.course.ID, f.student.ID)
	assert.Equal(t, models.StatusApproved, enrollment.Status)
}

func TestAdvisorCannotDecidePendingEnrollment(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)

	err := f.service.AdvisorDecide(context.Background(), f.advisor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAdvisorFromOtherDepartmentIsForbidden(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))
	otherAdvisor := f.users.add(&models.User{
		FullName:         "Math Advisor",
		Email:            "math@eims.edu",
		Category:         models.CategoryInstructor,
		Department:       "Mathematics",
		IsFacultyAdvisor: true,
	})

	err := f.service.AdvisorDecide(context.Background(), otherAdvisor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved"))

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestNonAdvisorInstructorCannotUseAdvisorDecision(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))

	err := f.service.AdvisorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved"))

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestConcurrentDecisionSurfacesConflict(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	f.enrollments.failNextUpdate = true

	err := f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA"))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRejectedEnrollmentStaysRejected(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Rejected")))

	err := f.service.AdvisorDecide(context.Background(), f.advisor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestListEnrolledCoursesUsesStatusLabels(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))

	courses, err := f.service.ListEnrolledCourses(context.Background(), f.student.ID)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Pending for FA", courses[0].Status)
	assert.Equal(t, "CS201", courses[0].CourseCode)
	assert.Equal(t, 4, courses[0].Credits)
}

func TestListPendingForInstructorGroupsByCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	second := f.courses.add(&models.Course{
		Title:        "Operating Systems",
		CourseCode:   "CS301",
		Credits:      3,
		InstructorID: f.instructor.ID,
	})
	otherStudent := f.users.add(&models.User{
		FullName:   "Edsger Dijkstra",
		Email:      "dijkstra@eims.edu",
		Category:   models.CategoryStudent,
		Department: "Computer Science",
	})
	f.enroll(t)
	_, err := f.service.Enroll(context.Background(), otherStudent.ID, f.course.ID)
	require.NoError(t, err)
	_, err = f.service.Enroll(context.Background(), otherStudent.ID, second.ID)
	require.NoError(t, err)

	groups, err := f.service.ListPendingForInstructor(context.Background(), f.instructor.ID)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, f.course.ID, groups[0].CourseID)
	assert.Len(t, groups[0].PendingStudents, 2)
	assert.Equal(t, second.ID, groups[1].CourseID)
	assert.Len(t, groups[1].PendingStudents, 1)
	assert.Equal(t, "Computer Science", groups[0].PendingStudents[0].Faculty)
}

func TestForwardedEnrollmentLeavesInstructorQueue(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))

	groups, err := f.service.ListPendingForInstructor(context.Background(), f.instructor.ID)

	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestAdvisorQueueScopedToDepartment(t *testing.T) {
	f := newEnrollmentFixture(t)
	mathStudent := f.users.add(&models.User{
		FullName:   "Emmy Noether",
		Email:      "noether@eims.edu",
		Category:   models.CategoryStudent,
		Department: "Mathematics",
	})
	f.enroll(t)
	_, err := f.service.Enroll(context.Background(), mathStudent.ID, f.course.ID)
	require.NoError(t, err)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, mathStudent.ID, "Pending for FA")))

	groups, err := f.service.ListPendingForAdvisor(context.Background(), f.advisor.ID)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].PendingStudents, 1)
	assert.Equal(t, f.student.ID, groups[0].PendingStudents[0].StudentID)
}

func TestRejectedEnrollmentAbsentFromAdvisorQueue(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Rejected")))

	groups, err := f.service.ListPendingForAdvisor(context.Background(), f.advisor.ID)

	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGetCourseStudentsReturnsOnlyApproved(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)
	require.NoError(t, f.service.InstructorDecide(context.Background(), f.instructor.ID,
		f.decision(f.course.ID, f.student.ID, "Pending for FA")))
	require.NoError(t, f.service.AdvisorDecide(context.Background(), f.advisor.ID,
		f.decision(f.course.ID, f.student.ID, "Approved")))
	pendingStudent := f.users.add(&models.User{
		FullName:   "Pending Student",
		Email:      "pending@eims.edu",
		Category:   models.CategoryStudent,
		Department: "Computer Science",
	})
	_, err := f.service.Enroll(context.Background(), pendingStudent.ID, f.course.ID)
	require.NoError(t, err)

	rosters, err := f.service.GetCourseStudents(context.Background(), f.instructor.ID, "CS201")

	require.NoError(t, err)
	require.Len(t, rosters, 1)
	assert.Equal(t, "CS201", rosters[0].CourseCode)
	require.Len(t, rosters[0].EnrolledStudents, 1)
	assert.Equal(t, f.student.ID, rosters[0].EnrolledStudents[0].StudentID)
	assert.Equal(t, "Approved", rosters[0].EnrolledStudents[0].Status)
}

func TestGetCourseStudentsForbiddenForNonOwner(t *testing.T) {
	f := newEnrollmentFixture(t)
	other := f.users.add(&models.User{
		FullName:   "Other Instructor",
		Email:      "other2@eims.edu",
		Category:   models.CategoryInstructor,
		Department: "Mathematics",
	})

	_, err := f.service.GetCourseStudents(context.Background(), other.ID, "CS201")

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListInstructorCoursesEmbedsRoster(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.enroll(t)

	courses, err := f.service.ListInstructorCourses(context.Background(), f.instructor.ID)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS201", courses[0].CourseCode)
	require.Len(t, courses[0].EnrolledStudents, 1)
	assert.Equal(t, "Pending", courses[0].EnrolledStudents[0].Status)
}
