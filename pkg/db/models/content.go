package models

// Stat is one row of the home-page counters. Rows have no public identity:
// the whole ordered sequence is replaced on every save.
type Stat struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Position int    `gorm:"column:position;not null"`
	Label    string `gorm:"column:label;not null"`
	Value    string `gorm:"column:value;not null"`
	Unit     string `gorm:"column:unit"`
}

// Quote mirrors Stat's wholesale-replace semantics.
type Quote struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Position int    `gorm:"column:position;not null"`
	Quote    string `gorm:"column:quote;not null"`
	Author   string `gorm:"column:author"`
}
