package content

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question belongs to a topic's quiz bank. Options are stored as a JSON
// string array; exactly one index is correct. The explanation is shown to the
// user after the answer has been checked.
type Question struct {
	gorm.Model
	TopicID      uint           `json:"topic_id" gorm:"index;not null"`
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	Prompt       string         `json:"prompt" gorm:"type:text"`
	Options      datatypes.JSON `json:"options"`
	CorrectIndex int            `json:"correct_index"`
	Explanation  string         `json:"explanation" gorm:"type:text"`
}

// OptionList decodes the stored options array.
func (q *Question) OptionList() []string {
	var opts []string
	if len(q.Options) > 0 {
		if err := json.Unmarshal(q.Options, &opts); err != nil {
			return nil
		}
	}
	return opts
}

// SetOptions encodes the options array for storage.
func (q *Question) SetOptions(opts []string) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	q.Options = datatypes.JSON(raw)
	return nil
}
