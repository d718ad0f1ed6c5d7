package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pariparajuli/geosurvey/schema"
)

// SurveyResponse - survey response operations
type SurveyResponse interface {
	SaveResponse(payload schema.SubmissionPayload, location *schema.Location, place *schema.Place) (*schema.SurveyResponse, error)
	LastUserResponse(userID int64) (*schema.SurveyResponse, error)
	ListResponses(surveyID int64, limit int64) ([]schema.SurveyResponse, error)
	CountResponses(surveyID int64) (int64, error)
	OptionCounts(surveyID int64) ([]schema.OptionCount, error)
}

// SaveResponse stores a submission. A nil location is stored without
// geometry and a nil place without an area.
func (m *mongoDB) SaveResponse(payload schema.SubmissionPayload, location *schema.Location, place *schema.Place) (*schema.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	r := schema.SurveyResponse{
		UserID:             payload.UserID,
		SurveyID:           payload.SurveyID,
		Responses:          payload.Responses.Strings(),
		RawLocation:        payload.Location,
		VoiceRecordingPath: payload.VoiceRecordingPath,
		Place:              place,
		Timestamp:          time.Now().UTC().UnixNano() / int64(time.Millisecond),
	}
	if location != nil {
		point := schema.NewGeoJSONPoint(*location)
		r.Location = &point
	}

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)
	if _, err := c.InsertOne(ctx, r); err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"user_id":   payload.UserID,
			"survey_id": payload.SurveyID,
			"error":     err,
		}).Error("insert survey response")
		return nil, err
	}

	return &r, nil
}

// LastUserResponse returns the latest response of a user, nil if the user
// never submitted one
func (m *mongoDB) LastUserResponse(userID int64) (*schema.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "ts", Value: -1}, {Key: "_id", Value: -1}})

	var r schema.SurveyResponse
	if err := c.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &r, nil
}

// ListResponses returns the latest responses of a survey, newest first. A
// non-positive limit returns all of them.
func (m *mongoDB) ListResponses(surveyID int64, limit int64) ([]schema.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)
	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := c.Find(ctx, bson.M{"survey_id": surveyID}, opts)
	if err != nil {
		return nil, err
	}

	results := make([]schema.SurveyResponse, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (m *mongoDB) CountResponses(surveyID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)
	return c.CountDocuments(ctx, bson.M{"survey_id": surveyID})
}

// OptionCounts counts the chosen options of every question of a survey
func (m *mongoDB) OptionCounts(surveyID int64) ([]schema.OptionCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)
	cur, err := c.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "survey_id", Value: surveyID}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "answers", Value: bson.D{{Key: "$objectToArray", Value: "$responses"}}},
		}}},
		bson.D{{Key: "$unwind", Value: "$answers"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "question", Value: "$answers.k"},
				{Key: "option", Value: "$answers.v"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "question", Value: bson.D{{Key: "$toInt", Value: "$_id.question"}}},
			{Key: "option", Value: "$_id.option"},
			{Key: "count", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "question", Value: 1},
			{Key: "count", Value: -1},
			{Key: "option", Value: 1},
		}}},
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"survey_id": surveyID,
			"error":     err,
		}).Error("aggregate option counts")
		return nil, err
	}

	results := make([]schema.OptionCount, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}
