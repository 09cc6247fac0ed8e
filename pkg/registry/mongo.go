package registry

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongoopts "go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// DefaultMongoCollection is the collection used when none is given.
const DefaultMongoCollection = "record_schemas"

type mongoField struct {
	Name     string `bson:"name"`
	Kind     string `bson:"kind"`
	Required bool   `bson:"required"`
}

type mongoSchema struct {
	Name      string       `bson:"_id"`
	Fields    []mongoField `bson:"fields"`
	UpdatedAt time.Time    `bson:"updated_at"`
}

// MongoStore keeps one document per schema, with the schema name as _id.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore uses the named collection of db. An empty collection name
// selects DefaultMongoCollection.
func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoStore{coll: db.Collection(collection)}
}

func (s *MongoStore) Get(ctx context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	var doc mongoSchema
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: name}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	schema, err := doc.schema()
	if err != nil {
		return nil, errors.Join(ErrCorruptSchema, err)
	}
	return schema, nil
}

func (s *MongoStore) Put(ctx context.Context, name string, schema *record.Schema) error {
	if err := checkName(name); err != nil {
		return err
	}
	if schema == nil {
		return ErrNilSchema
	}
	doc := mongoSchema{Name: name, UpdatedAt: time.Now().UTC()}
	for _, f := range schema.Fields() {
		doc.Fields = append(doc.Fields, mongoField{Name: f.Name, Kind: f.Kind.String(), Required: f.Required})
	}
	if doc.Fields == nil {
		doc.Fields = []mongoField{}
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: name}},
		doc,
		mongoopts.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: name}})
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.D{},
		mongoopts.Find().
			SetProjection(bson.D{{Key: "_id", Value: 1}}).
			SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	var docs []struct {
		Name string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return names, nil
}

func (d mongoSchema) schema() (*record.Schema, error) {
	specs := make([]record.FieldSpec, len(d.Fields))
	for i, f := range d.Fields {
		kind, err := record.ParseKind(f.Kind)
		if err != nil {
			return nil, err
		}
		specs[i] = record.FieldSpec{Name: f.Name, Kind: kind, Required: f.Required}
	}
	return record.NewSchema(specs...)
}
