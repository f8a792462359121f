package models

// Catalog constants served to form-driven clients. Kept in code rather than
// the database because they change with procurement cycles, not at runtime.

var LaptopModels = []string{
	"Dell Latitude 7350",
	"HP EliteBook 640 G11",
	"MacBook Pro 14",
	"Lenovo ThinkBook 14 Gen 8",
}

var CollectionSlots = []string{
	"09:00 AM",
	"10:30 AM",
	"11:15 AM",
	"02:00 PM",
	"03:30 PM",
	"04:45 PM",
}

var SoftwareCatalog = []string{
	"Microsoft Office 365",
	"Microsoft Teams",
	"Outlook Email Setup",
	"OneDrive Setup",
	"SharePoint Access",
	"VPN Access",
	"Visual Studio Code",
	"Docker Desktop",
}

var HardwareAccessories = []string{
	"Secure Thumb Drive",
	"External Harddrive",
	"SIM Card",
}
