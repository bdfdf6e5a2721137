// file: internals/features/tutorials/model/tutorial_video_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — help-centre video
// =========================================================

type TutorialVideo struct {
	// PK
	TutorialVideoID uuid.UUID `gorm:"column:tutorial_video_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tutorial_video_id"`

	TutorialVideoTitle       string `gorm:"column:tutorial_video_title;type:varchar(160);not null" json:"tutorial_video_title"`
	TutorialVideoDescription string `gorm:"column:tutorial_video_description;type:text;not null" json:"tutorial_video_description"`
	TutorialVideoURL         string `gorm:"column:tutorial_video_url;type:varchar(255);not null" json:"tutorial_video_url"`

	// Display position on the help page, smallest first
	TutorialVideoOrder int `gorm:"column:tutorial_video_order;not null;default:0;index" json:"tutorial_video_order"`

	TutorialVideoCreatedAt time.Time      `gorm:"column:tutorial_video_created_at;not null;default:now()" json:"tutorial_video_created_at"`
	TutorialVideoDeletedAt gorm.DeletedAt `gorm:"column:tutorial_video_deleted_at;index" json:"-"`
}

func (TutorialVideo) TableName() string {
	return "tutorial_videos"
}
