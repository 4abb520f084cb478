package model

import "time"

// DiaryStatus is the soft-delete marker of a diary.
type DiaryStatus string

const (
	DiaryStatusExist   DiaryStatus = "EXIST"
	DiaryStatusDeleted DiaryStatus = "DELETED"
)

type Diary struct {
	ID          int64
	MemberID    string
	Contents    string
	EmotionCode int
	Status      DiaryStatus
	CreatedAt   time.Time
}
