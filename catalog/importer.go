package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"github.com/hawkeyemusic/hawkeyebackend/repository"
)

// Importer runs the one-shot catalog import: it classifies each CSV row by
// its Type field and writes merchandise, albums and tracks through the
// repositories. Every run is independent and additive; re-running the same
// input appends duplicate records (at-least-once, no dedup by SKU or title).
type Importer struct {
	Albums repository.AlbumRepositoryInterface
	Tracks repository.TrackRepositoryInterface
	Merch  repository.MerchRepositoryInterface
}

// Summary reports what one import run created and how many row-level
// failures were skipped along the way.
type Summary struct {
	AlbumsCreated int `json:"albums_created"`
	TracksCreated int `json:"tracks_created"`
	MerchCreated  int `json:"merch_created"`
	RowErrors     int `json:"row_errors"`
}

func NewImporter(albums repository.AlbumRepositoryInterface, tracks repository.TrackRepositoryInterface, merch repository.MerchRepositoryInterface) *Importer {
	return &Importer{Albums: albums, Tracks: tracks, Merch: merch}
}

// Run fetches the CSV at csvURL and processes all three branches in order.
// A fetch or parse failure aborts the whole run; failures past that point
// are row-level: logged, counted and skipped.
func (imp *Importer) Run(ctx context.Context, csvURL string) (Summary, error) {
	rows, err := FetchRows(ctx, csvURL)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	imp.processMerch(rows, &sum)
	imp.processAlbums(rows, &sum)
	imp.processSingles(rows, &sum)

	log.Printf("Catalog import finished: %d albums, %d tracks, %d merch items, %d row errors",
		sum.AlbumsCreated, sum.TracksCreated, sum.MerchCreated, sum.RowErrors)
	return sum, nil
}

// processMerch maps allow-listed merchandise rows 1:1 into merch items. A
// price or stock parse failure fails only that row.
func (imp *Importer) processMerch(rows []Row, sum *Summary) {
	for _, row := range rows {
		if !merchTypes[row[fieldType]] {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(row[fieldRegularPrice]))
		if err != nil {
			log.Printf("Error adding merch item %s: invalid price %q: %v", row[fieldName], row[fieldRegularPrice], err)
			sum.RowErrors++
			continue
		}
		inStock, err := strconv.Atoi(strings.TrimSpace(row[fieldInStock]))
		if err != nil {
			log.Printf("Error adding merch item %s: invalid stock count %q: %v", row[fieldName], row[fieldInStock], err)
			sum.RowErrors++
			continue
		}

		item := &models.MerchItem{
			Name:        row[fieldName],
			Description: row[fieldDescription],
			Price:       price,
			SKU:         row[fieldSKU],
			Type:        row[fieldType],
			Category:    row[fieldCategories],
			InStock:     inStock,
			ImageAlt:    row[fieldImageAlt],
			ImageBack:   row[fieldImageBack],
			ImageFront:  row[fieldImageFront],
			ImageSide:   row[fieldImageSide],
			KunakiURL:   row[fieldKunakiURL],
		}
		if err := imp.Merch.Create(item); err != nil {
			log.Printf("Error adding merch item %s: %v", item.Name, err)
			sum.RowErrors++
			continue
		}
		sum.MerchCreated++
	}
}

// albumBuilder accumulates one album group's fixed metadata and member rows
// while scanning the input.
type albumBuilder struct {
	album models.Album
	rows  []Row
}

// processAlbums groups known album-type rows by type in first-seen order.
// The first row of a group fixes the album's images; the group's 1-based
// position among distinct types seen so far fixes the ordinal in its
// description. The album is written first so its tracks can reference the
// assigned ID.
func (imp *Importer) processAlbums(rows []Row, sum *Summary) {
	var order []*albumBuilder
	byType := make(map[string]*albumBuilder)

	for _, row := range rows {
		typ := row[fieldType]
		meta, ok := albumMetaByType[typ]
		if !ok {
			continue
		}

		builder, seen := byType[typ]
		if !seen {
			position := len(order) + 1
			builder = &albumBuilder{album: models.Album{
				Title:       typ,
				DedicatedTo: meta.DedicatedTo,
				Description: fmt.Sprintf("%s is the %d%s album in Hawk Eye's truth trilogy.", typ, position, ordinalSuffix(position)),
				CoverImage:  row[fieldImageFront],
				BackImage:   row[fieldAlbumBack],
				SideImage:   row[fieldAlbumSide],
				DiscImage:   row[fieldAlbumDisc],
				ReleaseYear: meta.ReleaseYear,
			}}
			byType[typ] = builder
			order = append(order, builder)
		}
		builder.rows = append(builder.rows, row)
	}

	for _, builder := range order {
		builder.album.TrackCount = len(builder.rows)
		if err := imp.Albums.Create(&builder.album); err != nil {
			log.Printf("Error adding album %s: %v", builder.album.Title, err)
			sum.RowErrors++
			continue
		}
		sum.AlbumsCreated++
		imp.createTracks(builder.album.ID, builder.rows, albumTrackDuration, sum)
	}
}

// processSingles collects Single rows into one synthetic album, created only
// when at least one such row exists. The cover comes from the first single
// in row order.
func (imp *Importer) processSingles(rows []Row, sum *Summary) {
	var singles []Row
	for _, row := range rows {
		if row[fieldType] == singleType {
			singles = append(singles, row)
		}
	}
	if len(singles) == 0 {
		return
	}

	album := models.Album{
		Title:       "Singles Collection",
		DedicatedTo: "The Fans",
		Description: "Collection of Hawk Eye's standalone singles.",
		CoverImage:  singles[0][fieldImageFront],
		ReleaseYear: "2023-2025",
		TrackCount:  len(singles),
	}
	if err := imp.Albums.Create(&album); err != nil {
		log.Printf("Error adding singles collection: %v", err)
		sum.RowErrors++
		return
	}
	sum.AlbumsCreated++
	imp.createTracks(album.ID, singles, singleTrackDuration, sum)
}

// createTracks writes one track per row, numbered 1..N in row order
func (imp *Importer) createTracks(albumID uint, rows []Row, duration string, sum *Summary) {
	for i, row := range rows {
		track := &models.Track{
			AlbumID:     albumID,
			Title:       row[fieldName],
			Duration:    duration,
			TrackNumber: i + 1,
			Description: row[fieldDescription],
			AudioURL:    row[fieldAudioURL],
			VideoURL:    row[fieldVideoURL],
			ImageURL:    row[fieldImageFront],
			SKU:         row[fieldSKU],
		}
		if err := imp.Tracks.Create(track); err != nil {
			log.Printf("Error adding track %s: %v", track.Title, err)
			sum.RowErrors++
			continue
		}
		sum.TracksCreated++
	}
}
