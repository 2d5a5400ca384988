package services

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

type courseFixture struct {
	service    *CourseService
	users      *fakeUserStore
	courses    *fakeCourseStore
	instructor *models.User
}

func newCourseFixture(t *testing.T) *courseFixture {
	t.Helper()

	users := newFakeUserStore()
	courses := newFakeCourseStore()
	instructor := users.add(&models.User{
		FullName:   "Alan Turing",
		Email:      "turing@eims.edu",
		Category:   models.CategoryInstructor,
		Department: "Computer Science",
	})

	return &courseFixture{
		service:    NewCourseService(courses, users, zerolog.Nop()),
		users:      users,
		courses:    courses,
		instructor: instructor,
	}
}

func (f *courseFixture) createRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:      "Algorithms",
		CourseCode: "CS201",
		Instructor: strconv.FormatInt(f.instructor.ID, 10),
		Credits:    "4",
	}
}

func TestCreateCourseResolvesInstructorAndCredits(t *testing.T) {
	f := newCourseFixture(t)

	course, err := f.service.CreateCourse(context.Background(), f.createRequest())

	require.NoError(t, err)
	assert.Equal(t, "CS201", course.CourseCode)
	assert.Equal(t, 4, course.Credits)
	assert.Equal(t, f.instructor.ID, course.InstructorID)
}

func TestCreateCourseRejectsDuplicateCode(t *testing.T) {
	f := newCourseFixture(t)
	_, err := f.service.CreateCourse(context.Background(), f.createRequest())
	require.NoError(t, err)

	req := f.createRequest()
	req.Title = "Another Course"
	_, err = f.service.CreateCourse(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrCourseCodeAlreadyExists)
}

func TestCreateCourseRejectsNonInstructor(t *testing.T) {
	f := newCourseFixture(t)
	student := f.users.add(&models.User{
		FullName: "Ada Lovelace",
		Email:    "ada@eims.edu",
		Category: models.CategoryStudent,
	})

	req := f.createRequest()
	req.Instructor = strconv.FormatInt(student.ID, 10)
	_, err := f.service.CreateCourse(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrNotAnInstructor)
}

func TestCreateCourseRejectsUnknownInstructor(t *testing.T) {
	f := newCourseFixture(t)

	req := f.createRequest()
	req.Instructor = "999"
	_, err := f.service.CreateCourse(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrNotAnInstructor)
}

func TestCreateCourseRejectsBadCredits(t *testing.T) {
	f := newCourseFixture(t)

	for _, credits := range []string{"", "abc", "0", "-2"} {
		req := f.createRequest()
		req.Credits = credits
		_, err := f.service.CreateCourse(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "credits=%q", credits)
	}
}

func TestListAvailableCoursesPaginates(t *testing.T) {
	f := newCourseFixture(t)
	for i := 1; i <= 12; i++ {
		f.courses.add(&models.Course{
			Title:        fmt.Sprintf("Course %d", i),
			CourseCode:   fmt.Sprintf("CS%03d", i),
			Credits:      3,
			InstructorID: f.instructor.ID,
		})
	}

	page, err := f.service.ListAvailableCourses(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Len(t, page.Courses, 5)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(12), page.TotalItems)
	assert.Equal(t, "CS006", page.Courses[0].CourseCode)
}

func TestListAvailableCoursesLastPagePartial(t *testing.T) {
	f := newCourseFixture(t)
	for i := 1; i <= 12; i++ {
		f.courses.add(&models.Course{
			Title:        fmt.Sprintf("Course %d", i),
			CourseCode:   fmt.Sprintf("CS%03d", i),
			Credits:      3,
			InstructorID: f.instructor.ID,
		})
	}

	page, err := f.service.ListAvailableCourses(context.Background(), 3, 5)

	require.NoError(t, err)
	assert.Len(t, page.Courses, 2)
}
