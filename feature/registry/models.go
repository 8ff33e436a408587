package registry

import "encoding/json"

// POI is one point of interest as returned by the registry.
type POI struct {
	ID             json.Number   `json:"ID"`
	UUID           string        `json:"UUID"`
	OperatorInfo   *OperatorInfo `json:"OperatorInfo"`
	UsageType      *UsageType    `json:"UsageType"`
	AddressInfo    *AddressInfo  `json:"AddressInfo"`
	Connections    []Connection  `json:"Connections"`
	NumberOfPoints *int          `json:"NumberOfPoints"`
	StatusType     *StatusType   `json:"StatusType"`
	UsageCost      string        `json:"UsageCost"`
}

type OperatorInfo struct {
	Title               string `json:"Title"`
	WebsiteURL          string `json:"WebsiteURL"`
	PhonePrimaryContact string `json:"PhonePrimaryContact"`
	ContactEmail        string `json:"ContactEmail"`
}

type UsageType struct {
	Title                string `json:"Title"`
	IsPayAtLocation      *bool  `json:"IsPayAtLocation"`
	IsMembershipRequired *bool  `json:"IsMembershipRequired"`
	IsAccessKeyRequired  *bool  `json:"IsAccessKeyRequired"`
}

type AddressInfo struct {
	Title             string   `json:"Title"`
	AddressLine1      string   `json:"AddressLine1"`
	AddressLine2      string   `json:"AddressLine2"`
	Town              string   `json:"Town"`
	StateOrProvince   string   `json:"StateOrProvince"`
	Postcode          string   `json:"Postcode"`
	Country           *Country `json:"Country"`
	Latitude          *float64 `json:"Latitude"`
	Longitude         *float64 `json:"Longitude"`
	ContactTelephone1 string   `json:"ContactTelephone1"`
}

type Country struct {
	ISOCode string `json:"ISOCode"`
	Title   string `json:"Title"`
}

type Connection struct {
	ConnectionType *ConnectionType `json:"ConnectionType"`
	Level          *Titled         `json:"Level"`
	CurrentType    *Titled         `json:"CurrentType"`
	PowerKW        *float64        `json:"PowerKW"`
	Quantity       *int            `json:"Quantity"`
	StatusType     *StatusType     `json:"StatusType"`
}

type ConnectionType struct {
	Title      string `json:"Title"`
	FormalName string `json:"FormalName"`
}

type Titled struct {
	Title string `json:"Title"`
}

type StatusType struct {
	Title         string `json:"Title"`
	IsOperational *bool  `json:"IsOperational"`
}
