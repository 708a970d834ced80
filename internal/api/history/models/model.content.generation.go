// Package historymodels chứa model lưu lịch sử các lượt sinh nội dung.
package historymodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentGeneration là một bản ghi lịch sử: input người dùng gửi và
// output agent trả về, lưu nguyên dạng map để không khóa cứng schema
// theo phiên bản agent.
type ContentGeneration struct {
	ID         primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	InputData  map[string]interface{} `json:"input_data" bson:"inputData"`
	OutputData map[string]interface{} `json:"output_data" bson:"outputData"`
	CreatedAt  int64                  `json:"created_at" bson:"createdAt"` // Unix milliseconds
}
