package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
)

// helper function to get the http request and store into struct from polygon.io
func getPolygon[DataType ContractsPage | ChainPage](url string, target DataType) (result DataType, err error) {
	_ = godotenv.Load()
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return target, err
	}
	key := os.Getenv("POLYGON_KEY")
	req.Header.Add("Authorization", fmt.Sprintf(`Bearer %s`, key))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return target, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return target, fmt.Errorf("data: polygon returned %s for %s", resp.Status, url)
	}

	err = json.NewDecoder(resp.Body).Decode(&target)
	if err != nil {
		return
	}
	result = target
	return result, nil
}

// helper function to open a json file into a typed target
func Open[T Surface | []string](filename string, target T) (T, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return target, err
	}
	err = json.Unmarshal(file, &target)
	if err != nil {
		return target, err
	}
	return target, nil
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
