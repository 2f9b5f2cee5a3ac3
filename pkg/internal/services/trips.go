package services

import (
	"github.com/tripmates/messaging/pkg/internal/database"
	"github.com/tripmates/messaging/pkg/internal/models"
)

func GetTripWithAlias(alias string) (models.Trip, error) {
	var trip models.Trip
	if err := database.C.Where(models.Trip{Alias: alias}).First(&trip).Error; err != nil {
		return trip, err
	}
	return trip, nil
}

func ListTrip(user models.Account) ([]models.Trip, error) {
	var trips []models.Trip
	if err := database.C.Where(models.Trip{AccountID: user.ID}).Find(&trips).Error; err != nil {
		return trips, err
	}
	return trips, nil
}

func NewTrip(trip models.Trip) (models.Trip, error) {
	if err := database.C.Save(&trip).Error; err != nil {
		return trip, err
	}
	return trip, nil
}
