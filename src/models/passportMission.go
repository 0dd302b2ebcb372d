package models

// RequirementType ชนิดเงื่อนไขของภารกิจ
type RequirementType string

const (
	RequirementSpecificActivity RequirementType = "specific_activity"
	RequirementTotalCount       RequirementType = "total_count"
	RequirementCategoryCount    RequirementType = "category_count"
)

// Valid ตรวจว่าเป็นชนิดที่ระบบรู้จัก
func (t RequirementType) Valid() bool {
	switch t {
	case RequirementSpecificActivity, RequirementTotalCount, RequirementCategoryCount:
		return true
	}
	return false
}

// Requirement เงื่อนไขหนึ่งข้อของภารกิจ
type Requirement struct {
	ID          string          `json:"id" bson:"id" validate:"required"`
	Label       string          `json:"label" bson:"label"`
	Type        RequirementType `json:"type" bson:"type" validate:"required,oneof=specific_activity total_count category_count"`
	TargetID    string          `json:"targetId,omitempty" bson:"targetId,omitempty" validate:"required_unless=Type total_count"`
	TargetValue int             `json:"targetValue,omitempty" bson:"targetValue,omitempty" validate:"gte=0"`
}

// PassportMission ภารกิจประจำวันของ digital passport
type PassportMission struct {
	ID           string        `json:"id" bson:"id" validate:"required"`
	Date         string        `json:"date" bson:"date" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	Title        string        `json:"title" bson:"title" validate:"required"`
	Description  string        `json:"description" bson:"description"`
	Requirements []Requirement `json:"requirements" bson:"requirements" validate:"dive"`
	RewardLabel  string        `json:"rewardLabel" bson:"rewardLabel"`
	RewardColor  string        `json:"rewardColor" bson:"rewardColor" example:"#f59e0b"`
}

// RequirementStatus ผลการประเมินเงื่อนไขหนึ่งข้อ
type RequirementStatus struct {
	Requirement
	Achieved   bool `json:"achieved"`
	CurrentVal int  `json:"currentVal"`
}

// MissionProgress ความคืบหน้าของภารกิจหนึ่งภารกิจ
type MissionProgress struct {
	MissionID         string              `json:"missionId"`
	Progress          int                 `json:"progress"`
	Total             int                 `json:"total"`
	IsComplete        bool                `json:"isComplete"`
	RequirementStatus []RequirementStatus `json:"requirementStatus"`
}
