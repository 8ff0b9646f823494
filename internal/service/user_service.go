package service

import (
	"context"
	"fmt"

	"github.com/letihelper/schedule_bot/internal/model"
	"github.com/letihelper/schedule_bot/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser регистрирует или обновляет пользователя
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName, languageCode string) (*model.User, error) {
	existingUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	// Если пользователь уже существует, обновляем данные профиля
	if existingUser != nil {
		existingUser.Username = username
		existingUser.FirstName = firstName
		existingUser.LastName = lastName
		existingUser.LanguageCode = languageCode

		if err := s.userRepo.Update(ctx, existingUser); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}

		return existingUser, nil
	}

	user := &model.User{
		TelegramID:   telegramID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		LanguageCode: languageCode,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username),
	)

	return user, nil
}

// LastGroup возвращает последнюю группу, которую запрашивал пользователь.
// Пустая строка, если пользователь неизвестен или групп ещё не запрашивал.
func (s *UserService) LastGroup(ctx context.Context, telegramID int64) string {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Warn("Failed to load user for last group",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return ""
	}
	if user == nil {
		return ""
	}
	return user.LastGroup
}

// RememberGroup запоминает последнюю успешно запрошенную группу
func (s *UserService) RememberGroup(ctx context.Context, telegramID int64, groupNumber string) {
	if err := s.userRepo.UpdateLastGroup(ctx, telegramID, groupNumber); err != nil {
		s.logger.Warn("Failed to remember last group",
			zap.Int64("telegram_id", telegramID),
			zap.String("group", groupNumber),
			zap.Error(err))
	}
}
