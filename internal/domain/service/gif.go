package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/zigbotdev/zigbot/internal/domain/contract"
)

// maxImageBytes caps downloads at the upload limit chat clients accept
const maxImageBytes = 8 * 1024 * 1024

// Conversion failures the user can act on
var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image too large")
	ErrImageUnreadable  = errors.New("image could not be downloaded or decoded")
	ErrGifEncode        = errors.New("image could not be encoded as gif")
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

type gifService struct {
	slackClient contract.SlackClient
	httpClient  *http.Client
	log         *logrus.Entry
}

func newGif(slackClient contract.SlackClient, httpClient *http.Client, log *logrus.Logger) *gifService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &gifService{
		slackClient: slackClient,
		httpClient:  httpClient,
		log:         log.WithField("component", "service.gif"),
	}
}

// Convert downloads the image, re-encodes it as a single-frame GIF and
// uploads the result to the channel with a success comment
func (s *gifService) Convert(channelID, userID, imageURL string) error {
	parsed, err := url.Parse(imageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ErrImageUnreadable
	}

	filename := path.Base(parsed.Path)
	if !validImageName(filename) {
		return ErrUnsupportedImage
	}

	data, err := s.download(imageURL)
	if err != nil {
		return err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		s.log.WithError(err).WithField("url", imageURL).Warn("failed to decode image")
		return ErrImageUnreadable
	}

	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, &gif.Options{NumColors: 256}); err != nil {
		s.log.WithError(err).Error("failed to encode gif")
		return ErrGifEncode
	}

	gifName := gifFileName(filename)
	gifSize := buf.Len()
	_, err = s.slackClient.UploadFileV2(slack.UploadFileV2Parameters{
		Reader:         &buf,
		FileSize:       gifSize,
		Filename:       gifName,
		Title:          gifName,
		Channel:        channelID,
		InitialComment: "✅ Successfully converted your image to a single-frame GIF!",
	})
	if err != nil {
		return fmt.Errorf("failed to upload gif: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"channel": channelID,
		"user":    userID,
		"format":  format,
		"file":    gifName,
		"bytes":   gifSize,
	}).Info("image converted to gif")
	return nil
}

func (s *gifService) download(imageURL string) ([]byte, error) {
	resp, err := s.httpClient.Get(imageURL)
	if err != nil {
		s.log.WithError(err).WithField("url", imageURL).Warn("failed to download image")
		return nil, ErrImageUnreadable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.WithFields(logrus.Fields{"url": imageURL, "status": resp.StatusCode}).Warn("image download rejected")
		return nil, ErrImageUnreadable
	}
	if resp.ContentLength > maxImageBytes {
		return nil, ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		s.log.WithError(err).WithField("url", imageURL).Warn("failed to read image body")
		return nil, ErrImageUnreadable
	}
	if len(data) > maxImageBytes {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

func validImageName(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func gifFileName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ".gif"
}
