package auth

import (
	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// Actor is the authenticated principal an authorization decision is made
// for. Every permission check in the system goes through an Actor so the
// rules live in one place.
type Actor struct {
	UserID           int64
	Category         models.Category
	Department       string
	IsFacultyAdvisor bool
}

// ActorFromUser builds an Actor from a loaded user record
func ActorFromUser(user *models.User) Actor {
	return Actor{
		UserID:           user.ID,
		Category:         user.Category,
		Department:       user.Department,
		IsFacultyAdvisor: user.IsFacultyAdvisor,
	}
}

// RequireCategory allows only actors of the given category
func (a Actor) RequireCategory(category models.Category) error {
	if a.Category != category {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// RequireCourseOwner allows only the instructor who owns the course
func (a Actor) RequireCourseOwner(course *models.Course) error {
	if a.Category != models.CategoryInstructor || course.InstructorID != a.UserID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// RequireFacultyAdvisor allows only a faculty advisor whose department
// matches the given one
func (a Actor) RequireFacultyAdvisor(department string) error {
	if a.Category != models.CategoryInstructor || !a.IsFacultyAdvisor {
		return apperrors.ErrPermissionDenied
	}
	if a.Department != department {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
