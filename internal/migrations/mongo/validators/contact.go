package validators

import "go.mongodb.org/mongo-driver/bson"

var ContactValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "email", "message"},
		"properties": bson.M{
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"email": bson.M{
				"bsonType": "string",
				"pattern":  "^.+@.+$",
			},
			"message": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
