package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"user_email", "user_name", "room_number", "start_time", "end_time", "price"},
		"properties": bson.M{
			"user_email": bson.M{
				"bsonType":    "string",
				"pattern":     "^.+@.+$",
				"description": "guest email, required",
			},
			"user_name": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"description": "guest name, required",
			},
			"room_number": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"description": "business-key reference into Rooms, required",
			},
			"start_time": bson.M{
				"bsonType": "date",
			},
			"end_time": bson.M{
				"bsonType": "date",
			},
			"price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},
			"payment_type": bson.M{
				"bsonType": "string",
			},
			"tip": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
