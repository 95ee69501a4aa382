package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizlink/portal-api/internal/core/domain"
)

const usersCollection = "portal_users"

// UserCatalog implements ports.UserCatalog on MongoDB. Documents carry a
// seq counter derived from insertion time so FirstByRole and List keep
// the catalog's insertion order.
type UserCatalog struct {
	coll *mongo.Collection
}

func NewUserCatalog(db *mongo.Database) *UserCatalog {
	return &UserCatalog{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index the duplicate check
// relies on. Call once at startup.
func (r *UserCatalog) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

type userDoc struct {
	ID               string `bson:"_id"`
	Email            string `bson:"email"`
	DisplayName      string `bson:"display_name"`
	PhoneNumber      string `bson:"phone_number"`
	BusinessCategory string `bson:"business_category,omitempty"`
	Role             string `bson:"role"`
	AvatarRef        string `bson:"avatar_ref,omitempty"`
	CreatedAt        int64  `bson:"created_at"`
	Seq              int64  `bson:"seq"`
}

func (r *UserCatalog) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		ID:               user.ID,
		Email:            user.Email,
		DisplayName:      user.DisplayName,
		PhoneNumber:      user.PhoneNumber,
		BusinessCategory: user.BusinessCategory,
		Role:             string(user.Role),
		AvatarRef:        user.AvatarRef,
		CreatedAt:        user.CreatedAt.Unix(),
		Seq:              time.Now().UnixNano(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	u := *user
	return &u, nil
}

func (r *UserCatalog) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserCatalog) FirstByRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: 1}})
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"role": string(role)}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNoSeedUser
		}
		return nil, fmt.Errorf("find seed user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserCatalog) List(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:               d.ID,
		Email:            d.Email,
		DisplayName:      d.DisplayName,
		PhoneNumber:      d.PhoneNumber,
		BusinessCategory: d.BusinessCategory,
		Role:             domain.Role(d.Role),
		AvatarRef:        d.AvatarRef,
		CreatedAt:        unixToTime(d.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
