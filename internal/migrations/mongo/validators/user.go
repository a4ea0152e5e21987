package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "email", "password_hash"},
		"properties": bson.M{
			"name": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"description": "display name, required",
			},
			"email": bson.M{
				"bsonType":    "string",
				"pattern":     "^.+@.+$",
				"description": "normalized lowercase email, required",
			},
			"password_hash": bson.M{
				"bsonType":    "string",
				"description": "bcrypt hash, required",
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
