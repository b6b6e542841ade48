package users_testing

import (
	"fmt"
	"time"

	users_dto "jobtracker/internal/features/users/dto"
	users_enums "jobtracker/internal/features/users/enums"
	users_models "jobtracker/internal/features/users/models"
	users_repositories "jobtracker/internal/features/users/repositories"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/storage"

	"github.com/google/uuid"
)

// CreateTestUser inserts a regular user and returns a valid access token.
func CreateTestUser() *users_dto.SignInResponseDTO {
	return CreateTestUserWithFullName("Test User " + uuid.New().String()[:8])
}

func CreateTestUserWithFullName(fullName string) *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:                   userID,
		Email:                email,
		FullName:             fullName,
		Role:                 users_enums.UserRoleUser,
		Permissions:          []users_enums.Permission{},
		HashedPassword:       &hashedPassword,
		PasswordCreationTime: time.Now().UTC(),
		CreatedAt:            time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	return generateAccess(user)
}

// GetTestAdmin returns an access token for whoever currently holds the single
// admin role, creating the initial admin when nobody does.
func GetTestAdmin() *users_dto.SignInResponseDTO {
	userRepository := &users_repositories.UserRepository{}

	admin, err := userRepository.GetAdmin()
	if err != nil {
		panic(err)
	}

	if admin == nil {
		if err := users_services.GetUserService().CreateInitialAdmin(); err != nil {
			panic(err)
		}

		admin, err = userRepository.GetAdmin()
		if err != nil || admin == nil {
			panic(fmt.Sprintf("initial admin was not created: %v", err))
		}
	}

	return generateAccess(admin)
}

func GetUser(userID uuid.UUID) *users_models.User {
	user, err := (&users_repositories.UserRepository{}).GetUserByID(userID)
	if err != nil {
		panic(err)
	}

	return user
}

func GetUserByEmail(email string) *users_models.User {
	user, err := (&users_repositories.UserRepository{}).GetUserByEmail(email)
	if err != nil {
		panic(err)
	}

	if user == nil {
		panic("user not found: " + email)
	}

	return user
}

func SoftDeleteTestUser(userID uuid.UUID) {
	if err := (&users_repositories.UserRepository{}).SoftDeleteUser(userID); err != nil {
		panic(err)
	}
}

// RecreateInitialAdmin demotes the current admin and renames any "admin"
// account, then creates a fresh passwordless initial admin.
func RecreateInitialAdmin() {
	userRepository := &users_repositories.UserRepository{}

	err := userRepository.RenameUserEmailForTests("admin", "admin-"+uuid.New().String())
	if err != nil {
		panic(err)
	}

	err = storage.GetDb().Model(&users_models.User{}).
		Where("role = ?", users_enums.UserRoleAdmin).
		Update("role", users_enums.UserRoleUser).Error
	if err != nil {
		panic(err)
	}

	if err := users_services.GetUserService().CreateInitialAdmin(); err != nil {
		panic(err)
	}
}

func generateAccess(user *users_models.User) *users_dto.SignInResponseDTO {
	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return response
}

func GrantPermissions(userID uuid.UUID, permissions ...users_enums.Permission) {
	if err := (&users_repositories.UserRepository{}).UpdatePermissions(userID, permissions); err != nil {
		panic(err)
	}
}
