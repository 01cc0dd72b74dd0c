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

const tasksCollection = "tasks"

type TaskRepository struct {
	collection *mongo.Collection
}

// Field names match the documents the original deployment wrote, so the
// repository can run against an existing database.
type taskDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail     string             `bson:"userEmail"`
	Text          string             `bson:"text"`
	Completed     bool               `bson:"completed"`
	Priority      string             `bson:"priority"`
	Category      string             `bson:"category,omitempty"`
	Date          string             `bson:"date"`
	Time          string             `bson:"time"`
	Details       string             `bson:"details"`
	IsHabit       bool               `bson:"isHabit"`
	LinkedHabitID *string            `bson:"linkedHabitId"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection(tasksCollection)}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, owner string, date *string) ([]domain.Task, error) {
	filter := bson.M{"userEmail": owner}
	if date != nil {
		filter["date"] = *date
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocToDomainTask(doc))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var doc taskDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) (domain.Task, error) {
	doc := taskDoc{
		UserEmail:     task.OwnerEmail,
		Text:          task.Text,
		Completed:     task.Completed,
		Priority:      string(task.Priority),
		Category:      task.Category,
		Date:          task.Date,
		Time:          task.Time,
		Details:       task.Details,
		IsHabit:       task.IsHabit,
		LinkedHabitID: task.LinkedHabitID,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Task{}, err
	}

	task.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return task, nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) FindLinked(ctx context.Context, owner, habitID, date string) (domain.Task, error) {
	filter := bson.M{
		"userEmail":     owner,
		"date":          date,
		"linkedHabitId": habitID,
	}

	var doc taskDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskDocToDomainTask(doc), nil
}

func (r *TaskRepository) SetLinkedCompleted(ctx context.Context, habitID, date string, completed bool) error {
	filter := bson.M{"linkedHabitId": habitID, "date": date}
	// Zero matches is fine: propagation to an absent task is best-effort.
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"completed": completed}})
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteByHabit(ctx context.Context, habitID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"linkedHabitId": habitID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *TaskRepository) BackfillCategory(ctx context.Context, category string) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"category": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"category": category}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func mapTaskDocToDomainTask(doc taskDoc) domain.Task {
	return domain.Task{
		ID:            doc.ID.Hex(),
		OwnerEmail:    doc.UserEmail,
		Text:          doc.Text,
		Completed:     doc.Completed,
		Priority:      domain.TaskPriority(doc.Priority),
		Category:      doc.Category,
		Date:          doc.Date,
		Time:          doc.Time,
		Details:       doc.Details,
		IsHabit:       doc.IsHabit,
		LinkedHabitID: doc.LinkedHabitID,
	}
}
