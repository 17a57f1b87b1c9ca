package engine

import (
	"time"

	"github.com/crmforge-dev/crmforge/pkg/schema"
)

// ts parses an RFC3339 timestamp. Seed data is compile-time constant, so a
// parse failure is a programming error.
func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("engine: bad seed timestamp " + s)
	}
	return t
}

// SeedCustomers returns the demo dataset the store boots with when no seed
// file is configured. Ids run 1..15; the id counter continues from 16.
func SeedCustomers() []schema.Customer {
	return []schema.Customer{
		{ID: 1, FirstName: "John", LastName: "Smith", Email: "john.smith@techcorp.com", Phone: "555-0101", Company: "TechCorp", Position: "Senior Developer", Status: schema.StatusActive, DateCreated: ts("2024-01-15T10:30:00Z"), LastUpdated: ts("2024-12-01T14:22:00Z"), Address: schema.Address{Street: "123 Main St", City: "San Francisco", State: "CA", ZipCode: "94105"}, Tags: []string{"enterprise", "technology", "priority"}, Revenue: 125000},
		{ID: 2, FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@innovate.io", Phone: "555-0102", Company: "Innovate.io", Position: "Product Manager", Status: schema.StatusActive, DateCreated: ts("2024-02-20T09:15:00Z"), LastUpdated: ts("2024-11-28T16:45:00Z"), Address: schema.Address{Street: "456 Oak Ave", City: "New York", State: "NY", ZipCode: "10001"}, Tags: []string{"startup", "growth"}, Revenue: 85000},
		{ID: 3, FirstName: "Michael", LastName: "Williams", Email: "m.williams@globalfinance.com", Phone: "555-0103", Company: "Global Finance", Position: "CFO", Status: schema.StatusInactive, DateCreated: ts("2023-11-10T14:20:00Z"), LastUpdated: ts("2024-06-15T10:30:00Z"), Address: schema.Address{Street: "789 Wall St", City: "New York", State: "NY", ZipCode: "10005"}, Tags: []string{"finance", "enterprise"}, Revenue: 250000},
		{ID: 4, FirstName: "Emily", LastName: "Brown", Email: "emily.brown@creative.agency", Phone: "555-0104", Company: "Creative Agency", Position: "Creative Director", Status: schema.StatusActive, DateCreated: ts("2024-03-05T11:00:00Z"), LastUpdated: ts("2024-12-10T09:15:00Z"), Address: schema.Address{Street: "321 Design Blvd", City: "Los Angeles", State: "CA", ZipCode: "90001"}, Tags: []string{"agency", "design", "marketing"}, Revenue: 95000},
		{ID: 5, FirstName: "Robert", LastName: "Davis", Email: "robert.d@logistics.net", Phone: "555-0105", Company: "Logistics Plus", Position: "Operations Manager", Status: schema.StatusPending, DateCreated: ts("2024-11-01T08:45:00Z"), LastUpdated: ts("2024-12-08T15:30:00Z"), Address: schema.Address{Street: "555 Shipping Way", City: "Chicago", State: "IL", ZipCode: "60601"}, Tags: []string{"logistics", "operations"}, Revenue: 75000},
		{ID: 6, FirstName: "Jessica", LastName: "Miller", Email: "j.miller@healthtech.com", Phone: "555-0106", Company: "HealthTech Solutions", Position: "VP of Sales", Status: schema.StatusActive, DateCreated: ts("2024-01-22T13:30:00Z"), LastUpdated: ts("2024-12-05T11:20:00Z"), Address: schema.Address{Street: "888 Medical Dr", City: "Boston", State: "MA", ZipCode: "02101"}, Tags: []string{"healthcare", "technology", "enterprise"}, Revenue: 180000},
		{ID: 7, FirstName: "David", LastName: "Garcia", Email: "david.garcia@retail.com", Phone: "555-0107", Company: "Retail Giants", Position: "Store Manager", Status: schema.StatusActive, DateCreated: ts("2024-04-10T10:00:00Z"), LastUpdated: ts("2024-11-30T14:15:00Z"), Address: schema.Address{Street: "222 Commerce St", City: "Dallas", State: "TX", ZipCode: "75201"}, Tags: []string{"retail", "consumer"}, Revenue: 65000},
		{ID: 8, FirstName: "Lisa", LastName: "Martinez", Email: "lisa.m@education.org", Phone: "555-0108", Company: "EduTech Platform", Position: "Head of Content", Status: schema.StatusInactive, DateCreated: ts("2023-09-15T09:30:00Z"), LastUpdated: ts("2024-07-20T16:00:00Z"), Address: schema.Address{Street: "777 Learning Ave", City: "Seattle", State: "WA", ZipCode: "98101"}, Tags: []string{"education", "content"}, Revenue: 55000},
		{ID: 9, FirstName: "James", LastName: "Rodriguez", Email: "james.r@automotive.com", Phone: "555-0109", Company: "Auto Innovations", Position: "Engineering Lead", Status: schema.StatusActive, DateCreated: ts("2024-02-28T14:45:00Z"), LastUpdated: ts("2024-12-07T10:30:00Z"), Address: schema.Address{Street: "999 Motor Way", City: "Detroit", State: "MI", ZipCode: "48201"}, Tags: []string{"automotive", "engineering", "innovation"}, Revenue: 110000},
		{ID: 10, FirstName: "Jennifer", LastName: "Wilson", Email: "jennifer.w@consulting.biz", Phone: "555-0110", Company: "Strategic Consulting", Position: "Senior Consultant", Status: schema.StatusActive, DateCreated: ts("2024-05-15T11:15:00Z"), LastUpdated: ts("2024-12-09T13:45:00Z"), Address: schema.Address{Street: "444 Advisory Ln", City: "Washington", State: "DC", ZipCode: "20001"}, Tags: []string{"consulting", "strategy"}, Revenue: 145000},
		{ID: 11, FirstName: "Christopher", LastName: "Anderson", Email: "chris.anderson@media.tv", Phone: "555-0111", Company: "Media Networks", Position: "Content Producer", Status: schema.StatusPending, DateCreated: ts("2024-10-20T08:30:00Z"), LastUpdated: ts("2024-12-06T15:20:00Z"), Address: schema.Address{Street: "666 Broadcast Ave", City: "Atlanta", State: "GA", ZipCode: "30301"}, Tags: []string{"media", "entertainment"}, Revenue: 78000},
		{ID: 12, FirstName: "Amanda", LastName: "Thomas", Email: "amanda.t@realestate.com", Phone: "555-0112", Company: "Property Group", Position: "Real Estate Agent", Status: schema.StatusActive, DateCreated: ts("2024-03-18T12:00:00Z"), LastUpdated: ts("2024-12-04T09:30:00Z"), Address: schema.Address{Street: "111 Property St", City: "Miami", State: "FL", ZipCode: "33101"}, Tags: []string{"real estate", "sales"}, Revenue: 92000},
		{ID: 13, FirstName: "Daniel", LastName: "Jackson", Email: "daniel.j@energy.co", Phone: "555-0113", Company: "Green Energy Co", Position: "Sustainability Director", Status: schema.StatusActive, DateCreated: ts("2024-06-01T10:45:00Z"), LastUpdated: ts("2024-12-08T14:00:00Z"), Address: schema.Address{Street: "333 Solar Way", City: "Phoenix", State: "AZ", ZipCode: "85001"}, Tags: []string{"energy", "sustainability", "green"}, Revenue: 105000},
		{ID: 14, FirstName: "Michelle", LastName: "White", Email: "michelle.white@fashion.style", Phone: "555-0114", Company: "Fashion Forward", Position: "Brand Manager", Status: schema.StatusInactive, DateCreated: ts("2023-12-10T13:15:00Z"), LastUpdated: ts("2024-08-25T11:30:00Z"), Address: schema.Address{Street: "888 Style Ave", City: "Los Angeles", State: "CA", ZipCode: "90210"}, Tags: []string{"fashion", "retail", "luxury"}, Revenue: 88000},
		{ID: 15, FirstName: "Kevin", LastName: "Harris", Email: "kevin.h@sports.net", Phone: "555-0115", Company: "Sports Management", Position: "Athletic Director", Status: schema.StatusActive, DateCreated: ts("2024-04-22T09:00:00Z"), LastUpdated: ts("2024-12-03T16:15:00Z"), Address: schema.Address{Street: "555 Stadium Rd", City: "Denver", State: "CO", ZipCode: "80201"}, Tags: []string{"sports", "management"}, Revenue: 72000},
	}
}
