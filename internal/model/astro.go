// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// ASTROMETRICS
// =============================================================================

// LunarDistanceKm is one lunar distance in kilometres; the display unit
// for near-Earth-object approach distances.
const LunarDistanceKm = 384400.0

// APOD is an astronomy picture of the day.
type APOD struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type"`
	Copyright   string `json:"copyright,omitempty"`
	IsFavorited bool   `json:"is_favorited,omitempty"`
}

// NEO is a near-Earth object close approach.
type NEO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DiameterMinM    float64   `json:"diameter_min_m"`
	DiameterMaxM    float64   `json:"diameter_max_m"`
	IsHazardous     bool      `json:"is_hazardous"`
	CloseApproachAt time.Time `json:"close_approach_at"`
	MissDistanceKm  float64   `json:"miss_distance_km"`
	VelocityKph     float64   `json:"velocity_kph"`
}

// LunarDistances converts the miss distance into lunar distances.
func (n NEO) LunarDistances() float64 {
	return n.MissDistanceKm / LunarDistanceKm
}

// ISSPosition is the current station ephemeris.
type ISSPosition struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Altitude  float64   `json:"altitude"`
	Velocity  float64   `json:"velocity"`
	Timestamp time.Time `json:"timestamp"`
}

// CrewMember is one person currently in orbit.
type CrewMember struct {
	Name   string `json:"name"`
	Craft  string `json:"craft"`
	Role   string `json:"role,omitempty"`
	Agency string `json:"agency,omitempty"`
}

// ISSPass is a predicted visible pass over the configured location.
type ISSPass struct {
	RiseTime     time.Time `json:"rise_time"`
	Duration     int       `json:"duration"`
	MaxElevation float64   `json:"max_elevation"`
}

// GroundtrackPoint is one sample of the ISS orbit trace.
type GroundtrackPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Launch is an orbital launch from the launch-library feed.
type Launch struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Provider    string     `json:"provider"`
	Rocket      string     `json:"rocket,omitempty"`
	Pad         string     `json:"pad,omitempty"`
	Status      string     `json:"status"`
	WindowStart *time.Time `json:"window_start,omitempty"`
	Mission     string     `json:"mission,omitempty"`
}

// AstroSettings configures the astrometrics page (observer location for
// pass predictions).
type AstroSettings struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation,omitempty"`
}

// AstroStatus reports per-source availability of the proxied feeds.
type AstroStatus struct {
	NASA     bool `json:"nasa"`
	Launches bool `json:"launches"`
	ISS      bool `json:"iss"`
}

// =============================================================================
// TREK
// =============================================================================

// TrekSeries is one series with its episode hierarchy.
type TrekSeries struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Abbrev  string       `json:"abbrev,omitempty"`
	Seasons []TrekSeason `json:"seasons,omitempty"`
}

// TrekSeason groups a series' episodes.
type TrekSeason struct {
	Number   int           `json:"number"`
	Episodes []TrekEpisode `json:"episodes,omitempty"`
}

// TrekEpisode is one episode.
type TrekEpisode struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Season   int    `json:"season"`
	Episode  int    `json:"episode"`
	AirDate  string `json:"air_date,omitempty"`
	Synopsis string `json:"synopsis,omitempty"`
}

// TrekShip is a starship entry.
type TrekShip struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Registry string `json:"registry,omitempty"`
	Class    string `json:"class,omitempty"`
}

// TrekCharacter is a character entry.
type TrekCharacter struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rank   string `json:"rank,omitempty"`
	Actor  string `json:"actor,omitempty"`
	Series string `json:"series,omitempty"`
}

// TrekSearchResult is the mixed search response.
type TrekSearchResult struct {
	Episodes   []TrekEpisode   `json:"episodes,omitempty"`
	Ships      []TrekShip      `json:"ships,omitempty"`
	Characters []TrekCharacter `json:"characters,omitempty"`
}
