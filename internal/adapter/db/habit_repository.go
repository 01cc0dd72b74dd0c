package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
)

const habitsCollection = "habits"

type HabitRepository struct {
	collection *mongo.Collection
}

type habitDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"userEmail"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Streak    []streakEntryDoc   `bson:"streak"`
}

type streakEntryDoc struct {
	Date      string `bson:"date"`
	Completed bool   `bson:"completed"`
}

var _ ports.HabitRepository = (*HabitRepository)(nil)

func NewHabitRepository(database *mongo.Database) *HabitRepository {
	return &HabitRepository{collection: database.Collection(habitsCollection)}
}

func (r *HabitRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Habit, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []habitDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	habits := make([]domain.Habit, 0, len(docs))
	for _, doc := range docs {
		habits = append(habits, mapHabitDocToDomainHabit(doc))
	}
	return habits, nil
}

func (r *HabitRepository) GetByID(ctx context.Context, id string) (domain.Habit, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Habit{}, domain.ErrHabitNotFound
	}

	var doc habitDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Habit{}, domain.ErrHabitNotFound
	}
	if err != nil {
		return domain.Habit{}, err
	}
	return mapHabitDocToDomainHabit(doc), nil
}

func (r *HabitRepository) Insert(ctx context.Context, habit domain.Habit) (domain.Habit, error) {
	doc := habitDoc{
		UserEmail: habit.OwnerEmail,
		Name:      habit.Name,
		Category:  habit.Category,
		Streak:    mapStreakToDocs(habit.Streak),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Habit{}, err
	}

	habit.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return habit, nil
}

func (r *HabitRepository) ReplaceStreak(ctx context.Context, id string, streak []domain.StreakEntry) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHabitNotFound
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"streak": mapStreakToDocs(streak)}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHabitNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func mapHabitDocToDomainHabit(doc habitDoc) domain.Habit {
	streak := make([]domain.StreakEntry, 0, len(doc.Streak))
	for _, entry := range doc.Streak {
		streak = append(streak, domain.StreakEntry{Date: entry.Date, Completed: entry.Completed})
	}

	return domain.Habit{
		ID:         doc.ID.Hex(),
		OwnerEmail: doc.UserEmail,
		Name:       doc.Name,
		Category:   doc.Category,
		Streak:     streak,
	}
}

func mapStreakToDocs(streak []domain.StreakEntry) []streakEntryDoc {
	docs := make([]streakEntryDoc, 0, len(streak))
	for _, entry := range streak {
		docs = append(docs, streakEntryDoc{Date: entry.Date, Completed: entry.Completed})
	}
	return docs
}
