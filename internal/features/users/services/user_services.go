package users_services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	audit_logs_entries "jobtracker/internal/features/audit_logs/entries"
	users_dto "jobtracker/internal/features/users/dto"
	users_enums "jobtracker/internal/features/users/enums"
	users_interfaces "jobtracker/internal/features/users/interfaces"
	users_models "jobtracker/internal/features/users/models"
	users_repositories "jobtracker/internal/features/users/repositories"
	"jobtracker/internal/storage"
	"jobtracker/internal/util/app_errors"
)

var (
	ErrUserAlreadyExists       = app_errors.New(app_errors.ErrConflict, "user with this email already exists")
	ErrRegistrationDisabled    = app_errors.New(app_errors.ErrPermissionDenied, "external registration is disabled")
	ErrInvalidCredentials      = app_errors.New(app_errors.ErrValidation, "email or password is incorrect")
	ErrUserDeleted             = app_errors.New(app_errors.ErrPermissionDenied, "user account is deleted")
	ErrPasswordNotSet          = app_errors.New(app_errors.ErrValidation, "user has no password set")
	ErrAdminMissing            = app_errors.New(app_errors.ErrNotFound, "admin user does not exist")
	ErrAdminPasswordAlreadySet = app_errors.New(app_errors.ErrConflict, "admin password is already set")
	ErrInvalidToken            = app_errors.New(app_errors.ErrNotAuthenticated, "invalid token")
	ErrPasswordChanged         = app_errors.New(app_errors.ErrNotAuthenticated, "password has been changed, please sign in again")
)

type UserService struct {
	userRepository      *users_repositories.UserRepository
	secretKeyRepository *users_repositories.SecretKeyRepository
	settingsService     *SettingsService
	// audit log is never nil, DI always set it
	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	email, err := NormalizeEmail(request.Email)
	if err != nil {
		return err
	}

	if err := ValidatePassword(request.Password); err != nil {
		return err
	}

	fullName, err := NormalizeFullName(request.FullName)
	if err != nil {
		return err
	}

	existingUser, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return ErrUserAlreadyExists
	}

	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.IsAllowExternalRegistrations {
		return ErrRegistrationDisabled
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                email,
		FullName:             fullName,
		Role:                 users_enums.UserRoleUser,
		Permissions:          []users_enums.Permission{},
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrUserAlreadyExists
		}

		return fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &user.ID,
		Action:     audit_logs_entries.ActionSignUp,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &user.ID,
		Message:    fmt.Sprintf("User registered with email: %s", user.Email),
	})

	return nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	if user.IsDeleted() {
		return nil, ErrUserDeleted
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.GenerateAccessToken(user)
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrInvalidToken
		}

		return nil, err
	}

	if user.IsDeleted() {
		return nil, ErrUserDeleted
	}

	passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0).Truncate(time.Second)
	userPasswordTime := user.PasswordCreationTime.Truncate(time.Second)

	if !tokenPasswordTime.Equal(userPasswordTime) {
		return nil, ErrPasswordChanged
	}

	return user, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"exp":                  expiration.Unix(),
		"iat":                  time.Now().UTC().Unix(),
		"role":                 string(user.Role),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) CreateInitialAdmin() error {
	return s.userRepository.CreateInitialAdmin()
}

func (s *UserService) IsRootAdminHasPassword() (bool, error) {
	admin, err := s.userRepository.GetUserByEmail("admin")
	if err != nil {
		return false, fmt.Errorf("failed to get admin user: %w", err)
	}

	if admin == nil {
		return false, ErrAdminMissing
	}

	return admin.HasPassword(), nil
}

func (s *UserService) SetRootAdminPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	admin, err := s.userRepository.GetUserByEmail("admin")
	if err != nil {
		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if admin == nil {
		return ErrAdminMissing
	}

	if admin.HasPassword() {
		return ErrAdminPasswordAlreadySet
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(admin.ID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &admin.ID,
		Action:     audit_logs_entries.ActionPasswordChanged,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &admin.ID,
		Message:    "Admin password set",
	})

	return nil
}

// ChangeUserPasswordByEmail is used by the command line reset and skips the
// "password already set" requirement.
func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return app_errors.New(app_errors.ErrNotFound, "user with this email does not exist")
	}

	return s.setPassword(user.ID, newPassword)
}

func (s *UserService) ChangeUserPassword(userID uuid.UUID, newPassword string) error {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return ErrPasswordNotSet
	}

	return s.setPassword(userID, newPassword)
}

func (s *UserService) setPassword(userID uuid.UUID, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &userID,
		Action:     audit_logs_entries.ActionPasswordChanged,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &userID,
		Message:    "Password changed",
	})

	return nil
}

func (s *UserService) UpdateProfile(user *users_models.User, request *users_dto.UpdateProfileRequestDTO) (*users_dto.UserProfileResponseDTO, error) {
	fullName, err := NormalizeFullName(request.FullName)
	if err != nil {
		return nil, err
	}

	if fullName == "" {
		return nil, app_errors.New(app_errors.ErrValidation, "full name is required")
	}

	oldFullName := user.FullName
	if err := s.userRepository.UpdateFullName(user.ID, fullName); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updatedUser, err := s.userRepository.GetUserByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(audit_logs_entries.Entry{
		UserID:     &user.ID,
		Action:     audit_logs_entries.ActionUpdateProfile,
		EntityType: audit_logs_entries.EntityUser,
		EntityID:   &user.ID,
		OldValue:   map[string]string{"fullName": oldFullName},
		NewValue:   map[string]string{"fullName": fullName},
	})

	return ToProfileDTO(updatedUser), nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) *users_dto.UserProfileResponseDTO {
	return ToProfileDTO(user)
}

func ToProfileDTO(user *users_models.User) *users_dto.UserProfileResponseDTO {
	permissions := []users_enums.Permission(user.Permissions)
	if user.IsAdmin() {
		permissions = users_enums.AllPermissions()
	}
	if permissions == nil {
		permissions = []users_enums.Permission{}
	}

	return &users_dto.UserProfileResponseDTO{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        user.Role,
		Permissions: permissions,
		IsDeleted:   user.IsDeleted(),
		DeletedAt:   user.DeletedAt,
		CreatedAt:   user.CreatedAt,
	}
}
