// Package recodex embeds the restaurant recommender in a Go program without
// running the HTTP API.
//
//	client, err := recodex.New(ctx,
//	    recodex.WithData("data/cleaned_data.csv", "data/encoded_data.csv"),
//	    recodex.WithValkey("localhost:6379", ""), // optional result cache
//	)
//	if err != nil { ... }
//	defer client.Close()
//
//	recs, _ := client.Recommend(ctx, "Mumbai", []string{"Biryani"}, recodex.TopN(5))
//	for _, r := range recs.Items {
//	    fmt.Println(r.Rank, r.Name, r.Score)
//	}
package recodex
