package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"club-app/internal/models"
)

func handleDatabaseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}
