package domain

import "time"

// Timestamps are stored as RFC 3339 text. Keeping them as strings end to end
// makes the month truncation and range predicates on sqlite exact, and matches
// the wire format so rows serialize without conversion.
const (
	TimestampLayout = time.RFC3339
	DateLayout      = "2006-01-02"
)

// Now returns the current instant in the stored timestamp format.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

// PropertyStatus values commonly observed. The column is open-set text; these
// constants only name the defaults and the values the dashboard groups on.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

// PropertyType values commonly observed (open set).
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeLand        PropertyType = "land"
)

// Property is a listed unit. Code is system generated at creation and never
// changes afterwards.
type Property struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Code         string  `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	Title        string  `gorm:"type:varchar(200);not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	Type         string  `gorm:"type:varchar(50);not null" json:"type"`
	Status       string  `gorm:"type:varchar(50);not null;default:'available';index" json:"status"`
	Price        float64 `gorm:"not null" json:"price"`
	CondoFee     float64 `gorm:"column:condo_fee;default:0" json:"condo_fee"`
	City         string  `gorm:"type:varchar(100);index" json:"city,omitempty"`
	State        string  `gorm:"type:varchar(100)" json:"state,omitempty"`
	Neighborhood string  `gorm:"type:varchar(100)" json:"neighborhood,omitempty"`
	Address      string  `gorm:"type:varchar(500)" json:"address,omitempty"`
	Bedrooms     int     `gorm:"default:0" json:"bedrooms"`
	Bathrooms    int     `gorm:"default:0" json:"bathrooms"`
	Suites       int     `gorm:"default:0" json:"suites"`
	ParkingSpots int     `gorm:"column:parking_spots;default:0" json:"parking_spots"`
	Area         float64 `gorm:"default:0" json:"area"`
	OwnerName    string  `gorm:"type:varchar(200);column:owner_name" json:"owner_name,omitempty"`
	OwnerEmail   string  `gorm:"type:varchar(255);column:owner_email" json:"owner_email,omitempty"`
	OwnerPhone   string  `gorm:"type:varchar(50);column:owner_phone" json:"owner_phone,omitempty"`
	CreatedAt    string  `gorm:"type:varchar(40);not null" json:"created_at"`
	UpdatedAt    string  `gorm:"type:varchar(40);not null" json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// ClientType values commonly observed (open set).
type ClientType string

const (
	ClientTypeBuyer  ClientType = "buyer"
	ClientTypeSeller ClientType = "seller"
	ClientTypeTenant ClientType = "tenant"
)

// ClientStage values commonly observed in the pipeline (open set).
type ClientStage string

const (
	ClientStageNew         ClientStage = "new"
	ClientStageContacted   ClientStage = "contacted"
	ClientStageNegotiating ClientStage = "negotiating"
	ClientStageWon         ClientStage = "won"
	ClientStageLost        ClientStage = "lost"
)

// Client is a person in the sales pipeline.
type Client struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(200);not null;index" json:"name"`
	Email       string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone       string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Type        string `gorm:"type:varchar(50);not null;default:'buyer';index" json:"type"`
	Stage       string `gorm:"type:varchar(50);not null;default:'new';index" json:"stage"`
	Preferences string `gorm:"type:text" json:"preferences,omitempty"`
	Notes       string `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   string `gorm:"type:varchar(40);not null" json:"created_at"`
	UpdatedAt   string `gorm:"type:varchar(40);not null" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// VisitStatus values commonly observed (open set).
type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// Visit schedules a client at a property. Deleting either parent cascades to
// the visit. PropertyTitle and ClientName are display-only join columns
// attached on every read; they have no backing column on the visits table.
type Visit struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"not null;index;column:property_id" json:"property_id"`
	Property      *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	ClientID      uint      `gorm:"not null;index;column:client_id" json:"client_id"`
	Client        *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	ScheduledAt   string    `gorm:"type:varchar(40);not null;index;column:scheduled_at" json:"scheduled_at"`
	Status        string    `gorm:"type:varchar(50);not null;default:'scheduled';index" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     string    `gorm:"type:varchar(40);not null" json:"created_at"`
	UpdatedAt     string    `gorm:"type:varchar(40);not null" json:"updated_at"`
	PropertyTitle string    `gorm:"->;-:migration;column:property_title" json:"property_title,omitempty"`
	ClientName    string    `gorm:"->;-:migration;column:client_name" json:"client_name,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// ContractType values commonly observed (open set).
type ContractType string

const (
	ContractTypeSale   ContractType = "sale"
	ContractTypeRental ContractType = "rental"
)

// ContractStatus values commonly observed (open set).
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// Contract binds a client to a property. StartDate and EndDate are stored as
// dates (YYYY-MM-DD); EndDate is nullable for open-ended rentals.
type Contract struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"not null;index;column:property_id" json:"property_id"`
	Property      *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	ClientID      uint      `gorm:"not null;index;column:client_id" json:"client_id"`
	Client        *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	Type          string    `gorm:"type:varchar(50);not null;index" json:"type"`
	StartDate     string    `gorm:"type:varchar(20);not null;index;column:start_date" json:"start_date"`
	EndDate       *string   `gorm:"type:varchar(20);index;column:end_date" json:"end_date,omitempty"`
	Value         float64   `gorm:"not null" json:"value"`
	Status        string    `gorm:"type:varchar(50);not null;default:'draft';index" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     string    `gorm:"type:varchar(40);not null" json:"created_at"`
	UpdatedAt     string    `gorm:"type:varchar(40);not null" json:"updated_at"`
	PropertyTitle string    `gorm:"->;-:migration;column:property_title" json:"property_title,omitempty"`
	ClientName    string    `gorm:"->;-:migration;column:client_name" json:"client_name,omitempty"`
}

func (Contract) TableName() string {
	return "contracts"
}
