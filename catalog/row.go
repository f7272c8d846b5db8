package catalog

// Row is one parsed line of the catalog CSV, keyed by normalized header name
// (dots rewritten to underscores). Rows only live for the duration of an
// import run.
type Row map[string]string

// normalized header keys of the store export schema
const (
	fieldType         = "Type"
	fieldName         = "Name"
	fieldSKU          = "SKU"
	fieldCategories   = "Categories"
	fieldRegularPrice = "Regular_price"
	fieldInStock      = "In_stock"
	fieldDescription  = "Description"
	fieldImageAlt     = "Image_alt"
	fieldImageBack    = "Image_back"
	fieldImageFront   = "Image_front"
	fieldImageSide    = "Image_side"
	fieldAudioURL     = "Audio_URL"
	fieldVideoURL     = "Video_URL"
	fieldKunakiURL    = "Kunaki_URL"
	fieldAlbumBack    = "Album_Back"
	fieldAlbumSide    = "Album_Side"
	fieldAlbumDisc    = "Album_Disc"
)
