// Package fanout downloads the images of an image generation response.
//
// Coordinator.Fill fetches every slot URL concurrently and joins the results
// by slot index, so slot order survives whatever order the downloads finish
// in. The join is all or nothing: when one download fails the response is
// left exactly as it was and the failure is returned as an *AssetFetchError.
package fanout
