package service

import (
	"errors"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/repository"
	"neuroscreen_backend/internal/util"

	"gorm.io/gorm"
)

// ProfileRequest carries the patient intake form.
type ProfileRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Age            int    `json:"age" binding:"required,gte=1,lte=120"`
	Gender         string `json:"gender" binding:"omitempty,oneof=male female"`
	Symptoms       string `json:"symptoms"`
	MedicalHistory string `json:"medicalHistory"`
}

type PatientService struct {
	ProfileRepo *repository.ProfileRepository
	UserRepo    *repository.UserRepository
}

func NewPatientService(profileRepo *repository.ProfileRepository, userRepo *repository.UserRepository) *PatientService {
	return &PatientService{
		ProfileRepo: profileRepo,
		UserRepo:    userRepo,
	}
}

// SaveProfile creates or replaces the caller's intake profile.
func (s *PatientService) SaveProfile(userID uint, req ProfileRequest) (*model.PatientProfile, error) {
	profile := &model.PatientProfile{
		UserID:         userID,
		FullName:       req.FullName,
		Age:            req.Age,
		Gender:         req.Gender,
		Symptoms:       req.Symptoms,
		MedicalHistory: req.MedicalHistory,
	}
	if err := s.ProfileRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

func (s *PatientService) GetProfile(userID uint) (*model.PatientProfile, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SetLanguage updates the user's preferred report language.
func (s *PatientService) SetLanguage(userID uint, lang string) error {
	if lang != model.LangArabic && lang != model.LangEnglish {
		return util.ErrUnsupportedLanguage
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	user.Language = lang
	return s.UserRepo.Update(user)
}
