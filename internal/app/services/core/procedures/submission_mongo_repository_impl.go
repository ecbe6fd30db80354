package procedures

import (
	"context"
	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubmissionMongoRepository(db *mongo.Client, dbName string) contracts.SubmissionRepository {
	return &SubmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubmissions),
	}
}

func (repo *SubmissionMongoRepository) InsertSubmission(ctx context.Context, record *models.SubmissionRecord) error {
	record.SetCreatedAtUpdatedAt()
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *SubmissionMongoRepository) FindSubmissionsByOrderUUID(ctx context.Context, orderUUID string) ([]models.SubmissionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"orderUuid": orderUUID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.SubmissionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return records, nil
}
