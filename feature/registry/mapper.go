package registry

import (
	"strings"

	"charge-finder/core/reconcile"
)

// toRawRecord converts a registry POI into the provider-neutral record.
func toRawRecord(p POI) reconcile.RawRecord {
	rec := reconcile.RawRecord{
		NativeID: p.ID.String(),
		UUID:     p.UUID,
	}

	if a := p.AddressInfo; a != nil {
		rec.Name = a.Title
		rec.Address = &reconcile.Address{
			Street:     joinAddress(a.AddressLine1, a.AddressLine2),
			City:       a.Town,
			State:      a.StateOrProvince,
			PostalCode: a.Postcode,
		}
		if a.Country != nil {
			rec.Address.Country = a.Country.Title
		}
		if a.Latitude != nil && a.Longitude != nil {
			rec.Coordinates = &reconcile.Coordinates{Latitude: *a.Latitude, Longitude: *a.Longitude}
		}
	}

	if o := p.OperatorInfo; o != nil {
		phone := o.PhonePrimaryContact
		if phone == "" && p.AddressInfo != nil {
			phone = p.AddressInfo.ContactTelephone1
		}
		rec.Operator = &reconcile.Operator{Name: o.Title, Website: o.WebsiteURL, Phone: phone}
	}

	if u := p.UsageType; u != nil || p.UsageCost != "" {
		usage := &reconcile.UsageTerms{Cost: p.UsageCost}
		if u != nil {
			usage.Title = u.Title
			usage.PayAtLocation = isTrue(u.IsPayAtLocation)
			usage.RequiresMembership = isTrue(u.IsMembershipRequired)
			usage.RequiresAccessKey = isTrue(u.IsAccessKeyRequired)
		}
		rec.Usage = usage
	}

	if p.StatusType != nil {
		rec.Operational = p.StatusType.IsOperational
	}
	if p.NumberOfPoints != nil {
		rec.PointCount = *p.NumberOfPoints
	}

	for _, c := range p.Connections {
		conn := reconcile.RawConnection{
			PowerKW:  c.PowerKW,
			Quantity: c.Quantity,
		}
		if c.ConnectionType != nil {
			conn.Title = c.ConnectionType.Title
			conn.FormalName = c.ConnectionType.FormalName
		}
		if c.Level != nil {
			conn.Level = c.Level.Title
		}
		if c.CurrentType != nil {
			conn.CurrentType = c.CurrentType.Title
		}
		if c.StatusType != nil {
			conn.Status = c.StatusType.Title
			conn.Operational = c.StatusType.IsOperational
		}
		rec.Connections = append(rec.Connections, conn)
	}
	return rec
}

func joinAddress(line1, line2 string) string {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)
	switch {
	case line1 != "" && line2 != "":
		return line1 + ", " + line2
	case line1 != "":
		return line1
	}
	return line2
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
