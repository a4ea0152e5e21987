package validators

import "go.mongodb.org/mongo-driver/bson"

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"room_number", "room_type", "price_per_hour"},
		"properties": bson.M{
			"room_number": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"description": "normalized room identifier, required",
			},
			"room_type": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"description": "room category, required",
			},
			"price_per_hour": bson.M{
				"bsonType":    []string{"double", "int", "long", "decimal"},
				"minimum":     0,
				"description": "hourly rate, must be positive",
			},
			"image_url": bson.M{
				"bsonType": "string",
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
