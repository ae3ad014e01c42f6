// Package models holds the development backend's GORM schema. It mirrors
// the deployed attendance service so the console can be exercised against a
// local database.
package models

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username  string    `gorm:"size:255;not null;unique;column:username"`
	Password  string    `gorm:"size:255;not null;column:password"` // bcrypt hash
	Name      string    `gorm:"size:255;not null;column:name"`
	Role      string    `gorm:"size:32;not null;column:role"`
	CreatedAt time.Time `gorm:"precision:6;autoCreateTime;column:createdAt"`
	UpdatedAt time.Time `gorm:"precision:6;autoUpdateTime;column:updatedAt"`
}

type Service struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name        string    `gorm:"size:255;not null;column:name"`
	ServiceTime time.Time `gorm:"precision:6;not null;column:serviceTime"`
	Type        string    `gorm:"size:32;not null;column:type"`
	Active      bool      `gorm:"not null;column:active"`
}

type Attendance struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    int64     `gorm:"not null;column:userId"`
	User      User      `gorm:"foreignKey:UserID"`
	ServiceID int64     `gorm:"not null;column:serviceId"`
	Service   Service   `gorm:"foreignKey:ServiceID"`
	Status    string    `gorm:"size:32;not null;column:status"`
	Latitude  *float64  `gorm:"column:latitude"`
	Longitude *float64  `gorm:"column:longitude"`
	Distance  *float64  `gorm:"column:distance"`
	CheckedAt time.Time `gorm:"precision:6;not null;column:checkedAt"`
	Notes     *string   `gorm:"size:1024;column:notes"`
}

type PendingUser struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"size:255;not null;column:name"`
	Phone     *string   `gorm:"size:64;column:phone"`
	Email     *string   `gorm:"size:255;column:email"`
	Notes     *string   `gorm:"size:1024;column:notes"`
	Active    bool      `gorm:"not null;default:true;column:active"`
	CreatedAt time.Time `gorm:"precision:6;autoCreateTime;column:createdAt"`
	UpdatedAt time.Time `gorm:"precision:6;autoUpdateTime;column:updatedAt"`
}
